package transform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doctree-format/go-doctree/ir"
)

func textNode(id, s string) *ir.Node {
	return ir.NewWithID(id, "text").Set("value", ir.Leaf(s))
}

// docTree builds
//
//	root{text("Hello, "), em{text("World!")}, list[A, B, C]}
//
// whose post-order visit ids are
// [text, em-text, em, A, B, C, list, root].
func docTree() *ir.Node {
	em := ir.NewWithID("em", "em").
		Set("children", ir.List(textNode("em-text", "World!")))
	list := ir.NewWithID("list", "list").
		Set("children", ir.List(
			textNode("A", "A"),
			textNode("B", "B"),
			textNode("C", "C"),
		))
	return ir.NewWithID("root", "root").
		Set("children", ir.List(textNode("text", "Hello, "), em, list))
}

func visitOrder(t *testing.T, tr *Transformer) []string {
	t.Helper()
	var ids []string
	err := tr.Traverse(func(n *ir.Node, _ *State) error {
		ids = append(ids, n.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("traverse: %v", err)
	}
	return ids
}

func TestTraverseOrder(t *testing.T) {
	root := docTree()
	want := []string{"text", "em-text", "em", "A", "B", "C", "list", "root"}
	got := visitOrder(t, New(root))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("visit order (-want +got):\n%s", d)
	}
	if got[len(got)-1] != "root" {
		t.Errorf("root not visited last: %v", got)
	}
}

func TestTraverseVisitsEachNodeOnce(t *testing.T) {
	root := docTree()
	seen := map[string]int{}
	err := New(root).Traverse(func(n *ir.Node, _ *State) error {
		seen[n.ID]++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("node %q visited %d times", id, count)
		}
	}
	if len(seen) != 8 {
		t.Errorf("visited %d nodes, want 8", len(seen))
	}
}

func TestTextContent(t *testing.T) {
	root := docTree()
	if got := root.TextContent(); got != "Hello, World!ABC" {
		t.Errorf("text content %q, want %q", got, "Hello, World!ABC")
	}
	texts := map[string]string{}
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		texts[n.ID] = st.TextContent()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for id, want := range map[string]string{
		"text": "Hello, ",
		"em":   "World!",
		"list": "ABC",
		"root": "Hello, World!ABC",
	} {
		if texts[id] != want {
			t.Errorf("textContent(%s) = %q, want %q", id, texts[id], want)
		}
	}
}

// The four encodings of one logical tree must traverse identically: a
// bare node, a single-entry top-level sequence, and a child slot held as
// a singleton, a one-entry sequence, or a singleton-wrapped sequence
// entry.
func TestEquivalentEncodings(t *testing.T) {
	build := func(childSlot func(*ir.Node) *ir.Value) *ir.Node {
		inner := textNode("inner", "x")
		return ir.NewWithID("top", "para").Set("child", childSlot(inner))
	}
	encodings := map[string]*Transformer{
		"bare node": New(build(func(n *ir.Node) *ir.Value {
			return ir.Child(n)
		})),
		"top-level sequence of one": NewEntries([]*ir.Value{
			ir.Child(build(func(n *ir.Node) *ir.Value { return ir.Child(n) })),
		}),
		"one-entry sequence slot": New(build(func(n *ir.Node) *ir.Value {
			return ir.List(n)
		})),
		"singleton-wrapped entry": New(build(func(n *ir.Node) *ir.Value {
			return ir.ListOf(ir.ListOf(ir.Child(n)))
		})),
	}
	type visit struct {
		ID        string
		Ancestors []string
		Text      string
		PrevNil   bool
		NextNil   bool
	}
	results := map[string][]visit{}
	for name, tr := range encodings {
		err := tr.Traverse(func(n *ir.Node, st *State) error {
			results[name] = append(results[name], visit{
				ID:        n.ID,
				Ancestors: st.AncestorTypes(),
				Text:      st.TextContent(),
				PrevNil:   st.PrevSibling() == nil,
				NextNil:   st.NextSibling() == nil,
			})
			return nil
		})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	want := results["bare node"]
	for name, got := range results {
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s traverses differently (-bare +%s):\n%s", name, name, d)
		}
	}
}

func TestListInputSynthesizesRoot(t *testing.T) {
	a, b := textNode("a", "a"), textNode("b", "b")
	tr := NewList([]*ir.Node{a, b})
	if tr.Root().Type != "root" {
		t.Fatalf("synthesized root type %q", tr.Root().Type)
	}
	got := visitOrder(t, tr)
	want := []string{"a", "b", ""}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("visit order (-want +got):\n%s", d)
	}
}

func TestReplaceRootErrors(t *testing.T) {
	for name, tr := range map[string]*Transformer{
		"bare":     New(docTree()),
		"sequence": NewList([]*ir.Node{textNode("a", "a"), textNode("b", "b")}),
	} {
		t.Run(name, func(t *testing.T) {
			var rootErrs int
			err := tr.Traverse(func(n *ir.Node, st *State) error {
				if n != tr.Root() {
					return nil
				}
				for _, args := range [][]*ir.Node{
					nil,
					{textNode("sub", "s")},
					{textNode("s1", "1"), textNode("s2", "2")},
				} {
					if err := st.Replace(args...); !errors.Is(err, ErrInvalidOperation) {
						return fmt.Errorf("replace root: got %v, want ErrInvalidOperation", err)
					}
					rootErrs++
				}
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if rootErrs != 3 {
				t.Errorf("root replace attempts rejected %d times, want 3", rootErrs)
			}
		})
	}
}

func TestReplaceOnNonRootSucceeds(t *testing.T) {
	root := docTree()
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID == "B" {
			return st.Replace(textNode("B2", "b2"))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "A", "B2", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("after replace (-want +got):\n%s", d)
	}
}

func TestRemoveNextSibling(t *testing.T) {
	root := docTree()
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID == "em" {
			st.RemoveNextSibling()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("after removing list (-want +got):\n%s", d)
	}
}

func TestRemoveNextSiblingSkipsRemovedSubtree(t *testing.T) {
	// the removed sibling's descendants must not be visited in the
	// same pass either
	root := docTree()
	var ids []string
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		ids = append(ids, n.ID)
		if n.ID == "em" {
			st.RemoveNextSibling()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "root"}
	if d := cmp.Diff(want, ids); d != "" {
		t.Errorf("same-pass visits (-want +got):\n%s", d)
	}
}

func TestRemoveNextSiblingNoOp(t *testing.T) {
	root := docTree()
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID == "C" || n.ID == "em-text" {
			// C is at the sequence boundary, em-text in a
			// one-entry sequence
			st.RemoveNextSibling()
			st.RemoveNextSibling()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "A", "B", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("tree changed by no-op removals (-want +got):\n%s", d)
	}
}

func TestReplaceDelete(t *testing.T) {
	root := docTree()
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID == "B" {
			return st.Replace()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "A", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("after delete (-want +got):\n%s", d)
	}
}

func TestReplaceSplice(t *testing.T) {
	root := docTree()
	var sameBatch []string
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		sameBatch = append(sameBatch, n.ID)
		if n.ID == "B" {
			return st.Replace(textNode("B1", "1"), textNode("B2", "2"), textNode("B3", "3"))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// inserted nodes are not visited in the pass that inserted them
	wantSame := []string{"text", "em-text", "em", "A", "B", "C", "list", "root"}
	if d := cmp.Diff(wantSame, sameBatch); d != "" {
		t.Errorf("same-pass visits (-want +got):\n%s", d)
	}
	want := []string{"text", "em-text", "em", "A", "B1", "B2", "B3", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("fresh traversal (-want +got):\n%s", d)
	}
}

func TestReplaceLastWins(t *testing.T) {
	root := docTree()
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID != "B" {
			return nil
		}
		if err := st.Replace(textNode("X", "x")); err != nil {
			return err
		}
		return st.Replace()
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"text", "em-text", "em", "A", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("after replace-then-delete (-want +got):\n%s", d)
	}
}

func TestReparenting(t *testing.T) {
	root := docTree()
	var firstPass []string
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		firstPass = append(firstPass, n.ID)
		if n.ID == "em" {
			wrap := ir.NewWithID("wrap", "strong").Set("children", ir.List(n))
			return st.Replace(wrap)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// neither the wrapper nor the reparented original is revisited
	wantFirst := []string{"text", "em-text", "em", "A", "B", "C", "list", "root"}
	if d := cmp.Diff(wantFirst, firstPass); d != "" {
		t.Errorf("reparenting pass (-want +got):\n%s", d)
	}
	want := []string{"text", "em-text", "em", "wrap", "A", "B", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("fresh traversal (-want +got):\n%s", d)
	}
}

func TestSingletonSlotReplace(t *testing.T) {
	tests := []struct {
		name     string
		with     []*ir.Node
		wantNext []string
		wantText string
	}{
		{
			name:     "delete empties the slot",
			with:     nil,
			wantNext: []string{"top"},
			wantText: "",
		},
		{
			name:     "single substitutes in place",
			with:     []*ir.Node{textNode("new", "n")},
			wantNext: []string{"new", "top"},
			wantText: "n",
		},
		{
			name:     "many upgrade the slot to a sequence",
			with:     []*ir.Node{textNode("n1", "1"), textNode("n2", "2")},
			wantNext: []string{"n1", "n2", "top"},
			wantText: "12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ir.NewWithID("top", "para").
				Set("child", ir.Child(textNode("old", "o")))
			err := New(root).Traverse(func(n *ir.Node, st *State) error {
				if n.ID == "old" {
					return st.Replace(tt.with...)
				}
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.wantNext, visitOrder(t, New(root))); d != "" {
				t.Errorf("fresh traversal (-want +got):\n%s", d)
			}
			if got := root.TextContent(); got != tt.wantText {
				t.Errorf("text %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestStop(t *testing.T) {
	root := docTree()
	var ids []string
	err := New(root).Traverse(func(n *ir.Node, _ *State) error {
		ids = append(ids, n.ID)
		if n.ID == "em" {
			return Stop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Stop should exit cleanly, got %v", err)
	}
	want := []string{"text", "em-text", "em"}
	if d := cmp.Diff(want, ids); d != "" {
		t.Errorf("stopped traversal (-want +got):\n%s", d)
	}
}

func TestVisitorErrorPropagates(t *testing.T) {
	root := docTree()
	boom := errors.New("boom")
	var ids []string
	err := New(root).Traverse(func(n *ir.Node, _ *State) error {
		ids = append(ids, n.ID)
		if n.ID == "A" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	want := []string{"text", "em-text", "em", "A"}
	if d := cmp.Diff(want, ids); d != "" {
		t.Errorf("aborted traversal (-want +got):\n%s", d)
	}
}

func TestMutationsSurviveAbort(t *testing.T) {
	// an aborted traversal leaves already-applied mutations in place
	root := docTree()
	boom := errors.New("boom")
	err := New(root).Traverse(func(n *ir.Node, st *State) error {
		if n.ID == "text" {
			return st.Replace()
		}
		if n.ID == "em" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatal(err)
	}
	want := []string{"em-text", "em", "A", "B", "C", "list", "root"}
	if d := cmp.Diff(want, visitOrder(t, New(root))); d != "" {
		t.Errorf("after aborted pass (-want +got):\n%s", d)
	}
}
