// Package transform drives depth-first post-order traversal over an ir.Node
// tree while letting the visitor mutate the tree in flight.
//
// A Transformer owns a reference to a tree and walks it once per Traverse
// call, invoking a caller-supplied Visitor exactly once per node reachable
// at the time it is visited, children before parents, the tree root last.
// The State handed to the visitor is bound to the node's live position and
// exposes sibling and ancestor queries, aggregated text, and structural
// edits (Replace, RemoveNextSibling) that take effect immediately against
// the live tree.
//
// The traversal cursor is re-derived from the (possibly just-mutated)
// parent slot after every visitor return, so removals and insertions
// performed by the visitor are reflected for the next step without
// skipping or duplicating a node. Nodes inserted by Replace are not
// traversed in the same pass: replace is a terminal action for the
// position being visited, which is also what makes reparenting (replacing
// a node with a wrapper that embeds it) safe.
//
// All mutation is destructive and in place; there is no rollback. A tree
// must not be traversed concurrently with itself. Structural edits made
// outside the State facade leave traversal behavior unspecified.
package transform
