package transform

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/doctree-format/go-doctree/debug"
	"github.com/doctree-format/go-doctree/ir"
)

// singleton marks a position inside a single-child slot, where no
// siblings are possible.
const singleton = -1

// State is the mutation and query facade handed to a Visitor. It is bound
// to the visited node's live position: the parent node, the parent slot,
// and the index within a sequence slot. A State is scoped to exactly one
// visitor invocation.
//
// Nothing prevents calling Replace more than once during a single visit;
// the last structural change wins. The engine does not defend against a
// caller aliasing one node object into two tree positions; behavior in
// that case is undefined.
type State struct {
	t  *Transformer
	up *State // state of the parent node; nil at the root

	node   *ir.Node
	parent *ir.Node
	slot   string
	owner  *ir.Value // the slot value containing node's position
	index  int       // index within owner.List, or singleton
	width  int       // entries occupying the position; 1 until Replace changes it
	next   int       // resume index for the traversal cursor
}

// Node returns the node currently being visited, identity-equal to the
// visitor's node argument.
func (s *State) Node() *ir.Node {
	return s.node
}

// NodeType returns the visited node's discriminator string.
func (s *State) NodeType() string {
	return s.node.Type
}

// Root returns the tree's true root.
func (s *State) Root() *ir.Node {
	return s.t.root
}

// PrevSibling returns the node at the preceding entry of the current
// sequence slot, or nil at the boundary or in a singleton slot.
func (s *State) PrevSibling() *ir.Node {
	if s.index == singleton || s.index == 0 {
		return nil
	}
	n, ok := ir.EntryNode(s.owner.List[s.index-1])
	if !ok {
		return nil
	}
	return n
}

// NextSibling returns the node at the following entry of the current
// sequence slot, or nil at the boundary or in a singleton slot.
func (s *State) NextSibling() *ir.Node {
	if s.index == singleton {
		return nil
	}
	idx := s.index + s.width
	if idx >= len(s.owner.List) {
		return nil
	}
	n, ok := ir.EntryNode(s.owner.List[idx])
	if !ok {
		return nil
	}
	return n
}

// Ancestors returns the chain of ancestor nodes from the true root down
// to and including the visited node's parent. The internal root wrapper
// never appears; the root itself has no ancestors.
func (s *State) Ancestors() []*ir.Node {
	var res []*ir.Node
	for p := s.up; p != nil; p = p.up {
		res = append(res, p.node)
	}
	slices.Reverse(res)
	return res
}

// AncestorTypes returns the discriminator strings of Ancestors, in the
// same order.
func (s *State) AncestorTypes() []string {
	anc := s.Ancestors()
	res := make([]string, len(anc))
	for i, a := range anc {
		res[i] = a.Type
	}
	return res
}

// TextContent returns the aggregated string leaves of the visited node's
// subtree, in document order, reflecting any mutations already applied.
func (s *State) TextContent() string {
	return s.node.TextContent()
}

// Path renders the visited node's position as a $-path, e.g.
// "$.children[1].label".
func (s *State) Path() string {
	if s.up == nil {
		return "$"
	}
	prefix := s.up.Path() + "." + s.slot
	if s.index == singleton {
		return prefix
	}
	return prefix + "[" + strconv.Itoa(s.index) + "]"
}

// RemoveNextSibling deletes the entry immediately following the visited
// node's position within its sequence slot. It is a no-op in a singleton
// slot or when no such entry exists. The removed subtree is not visited.
func (s *State) RemoveNextSibling() {
	if s.index == singleton {
		return
	}
	idx := s.index + s.width
	if idx >= len(s.owner.List) {
		return
	}
	if debug.Transform() {
		debug.Logf("remove next sibling at %s\n", s.Path())
	}
	s.owner.List = append(s.owner.List[:idx:idx], s.owner.List[idx+1:]...)
}

// Replace substitutes the visited node's position in its parent slot.
// With no arguments the position is deleted: a singleton slot becomes
// empty (a null leaf) and a sequence entry is removed. With one node the
// position is substituted in place; with several, the nodes occupy the
// former position in order, upgrading a singleton slot to a sequence.
//
// Replacement content is not traversed in the current pass. A replacement
// node may embed the original node as one of its slots; that is the
// supported reparenting mechanism and does not cause a revisit.
//
// Replace returns an error wrapping ErrInvalidOperation when the visited
// node is the tree's true root.
func (s *State) Replace(nodes ...*ir.Node) error {
	if s.node == s.t.root {
		return fmt.Errorf("replace root node at %s: %w", s.Path(), ErrInvalidOperation)
	}
	if debug.Transform() {
		debug.Logf("replace %d node(s) at %s\n", len(nodes), s.Path())
	}
	if s.index == singleton {
		switch len(nodes) {
		case 0:
			*s.owner = ir.Value{Kind: ir.LeafKind}
		case 1:
			*s.owner = ir.Value{Kind: ir.NodeKind, Node: nodes[0]}
		default:
			*s.owner = *ir.List(nodes...)
		}
		return nil
	}
	out := make([]*ir.Value, 0, len(s.owner.List)-s.width+len(nodes))
	out = append(out, s.owner.List[:s.index]...)
	for _, n := range nodes {
		out = append(out, ir.Child(n))
	}
	out = append(out, s.owner.List[s.index+s.width:]...)
	s.owner.List = out
	s.width = len(nodes)
	s.next = s.index + len(nodes)
	return nil
}
