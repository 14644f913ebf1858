// Package ir provides the intermediate representation (IR) for document trees.
//
// # Overview
//
// The IR package defines the core data structures for representing parsed
// documents as a tree of nodes. Documents produced by a markdown-style parser
// (whether decoded from JSON or created programmatically) are represented as
// ir.Node trees.
//
// # Node Structure
//
// A Node carries two discriminator fields, ID and Type, plus an ordered list
// of named slots. The discriminators are opaque to this package: it reasons
// about tree shape only, never about what a given Type string means.
//
// A slot's value is a tagged union (Value) of one of three kinds:
//
//   - LeafKind: a scalar payload (string, bool, number, null). Leaves are
//     terminal; string leaves contribute to aggregated text content.
//   - NodeKind: a single child node.
//   - ListKind: an ordered sequence of entries. An entry is normally a child
//     node; as an accepted producer quirk, an entry may instead be a
//     singleton sequence wrapping exactly one child node. The wrapped form
//     is equivalent to the unwrapped one everywhere in this module.
//
// Slot order is insertion order, and it is the only order this module
// reasons about.
//
// # Creating Nodes
//
// Use constructor functions to create nodes and values:
//
//	n := ir.New("paragraph").
//	    Set("children", ir.List(
//	        ir.New("text").Set("value", ir.Leaf("hello")),
//	    ))
//
// # Related Packages
//
//   - github.com/doctree-format/go-doctree/parse - decodes JSON documents into IR nodes
//   - github.com/doctree-format/go-doctree/encode - encodes IR nodes to text
//   - github.com/doctree-format/go-doctree/transform - post-order tree transformation
package ir
