package transform

import (
	"errors"

	"github.com/doctree-format/go-doctree/ir"
)

// Visitor is invoked once per node, in post-order. Returning a non-nil
// error aborts the traversal and propagates out of Traverse, except for
// Stop which exits cleanly.
type Visitor func(n *ir.Node, st *State) error

// childrenSlot is the slot under which synthesized roots hold the
// top-level entries of a sequence-form document.
const childrenSlot = "children"

// Transformer wraps a tree for traversal. The tree is never copied; all
// mutation is in place. A Transformer holds no state between Traverse
// calls beyond the tree itself.
type Transformer struct {
	// wrapper is an internal parent of the root so that every visited
	// node has a parent slot position. It is never visited, never
	// appears in Ancestors, and is never returned by Root.
	wrapper *ir.Node
	root    *ir.Node
}

// New wraps a single-rooted tree. No validation is performed.
func New(root *ir.Node) *Transformer {
	w := ir.New("root")
	w.Set(childrenSlot, ir.List(root))
	return &Transformer{wrapper: w, root: root}
}

// NewList wraps a sequence-form document. A single-entry sequence is
// equivalent to its bare node; otherwise a root node of type "root" is
// synthesized with the entries as its children, and that node becomes the
// caller-visible root: it is visited last and cannot be replaced.
func NewList(nodes []*ir.Node) *Transformer {
	if len(nodes) == 1 {
		return New(nodes[0])
	}
	root := ir.New("root")
	root.Set(childrenSlot, ir.List(nodes...))
	return New(root)
}

// NewEntries is NewList for raw sequence entries, accepting the
// singleton-sequence wrapping variant at top level.
func NewEntries(entries []*ir.Value) *Transformer {
	if len(entries) == 1 {
		if n, ok := ir.EntryNode(entries[0]); ok {
			return New(n)
		}
	}
	root := ir.New("root")
	root.Set(childrenSlot, ir.ListOf(entries...))
	return New(root)
}

// Root returns the tree's true root.
func (t *Transformer) Root() *ir.Node {
	return t.root
}

// Traverse walks the tree depth-first in post-order, invoking v exactly
// once per node reachable at the time it is visited. The root is visited
// last. Returns once the whole tree has been visited; the tree itself is
// the output, via mutation.
func (t *Transformer) Traverse(v Visitor) error {
	st := &State{
		t:      t,
		node:   t.root,
		parent: t.wrapper,
		slot:   childrenSlot,
		owner:  t.wrapper.Get(childrenSlot),
		index:  0,
		width:  1,
		next:   1,
	}
	err := t.walk(st, v)
	if errors.Is(err, Stop) {
		return nil
	}
	return err
}

// walk recurses into the slots of st's node, then visits the node itself.
func (t *Transformer) walk(st *State, v Visitor) error {
	n := st.node
	// the facade never adds or removes slots, only rewrites their
	// values, so iterating by index is stable here
	for i := 0; i < len(n.Slots); i++ {
		if err := t.walkValue(st, n.Slots[i].Name, n.Slots[i].Value, v); err != nil {
			return err
		}
	}
	return v(n, st)
}

// walkValue recurses into the children held by one slot value. up is the
// state of the node owning the slot. The cursor over a sequence is
// re-resolved after every visit: st.next is where mutations record the
// resume index.
func (t *Transformer) walkValue(up *State, slotName string, val *ir.Value, v Visitor) error {
	if val == nil {
		return nil
	}
	switch val.Kind {
	case ir.NodeKind:
		if val.Node == nil {
			return nil
		}
		st := &State{
			t:      t,
			up:     up,
			node:   val.Node,
			parent: up.node,
			slot:   slotName,
			owner:  val,
			index:  singleton,
			width:  1,
		}
		return t.walk(st, v)
	case ir.ListKind:
		for i := 0; i < len(val.List); {
			child, ok := ir.EntryNode(val.List[i])
			if !ok {
				i++
				continue
			}
			st := &State{
				t:      t,
				up:     up,
				node:   child,
				parent: up.node,
				slot:   slotName,
				owner:  val,
				index:  i,
				width:  1,
				next:   i + 1,
			}
			if err := t.walk(st, v); err != nil {
				return err
			}
			i = st.next
		}
	}
	return nil
}
