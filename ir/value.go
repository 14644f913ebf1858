package ir

import "fmt"

// Kind discriminates the value held by a slot.
type Kind int

const (
	LeafKind Kind = iota
	NodeKind
	ListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		LeafKind: "Leaf",
		NodeKind: "Node",
		ListKind: "List",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf": LeafKind,
		"Node": NodeKind,
		"List": ListKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{LeafKind, NodeKind, ListKind}
}

// Value is the tagged union held by a slot. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Leaf any      // LeafKind: string, bool, json.Number, or nil
	Node *Node    // NodeKind
	List []*Value // ListKind: entries of NodeKind or singleton ListKind
}

// Leaf wraps a scalar payload as a slot value.
func Leaf(v any) *Value {
	return &Value{Kind: LeafKind, Leaf: v}
}

// Child wraps a single child node as a slot value.
func Child(n *Node) *Value {
	return &Value{Kind: NodeKind, Node: n}
}

// List builds a sequence slot value from child nodes.
func List(ns ...*Node) *Value {
	entries := make([]*Value, len(ns))
	for i, n := range ns {
		entries[i] = Child(n)
	}
	return &Value{Kind: ListKind, List: entries}
}

// ListOf builds a sequence slot value from raw entries, which may include
// the singleton-sequence wrapping variant.
func ListOf(entries ...*Value) *Value {
	return &Value{Kind: ListKind, List: entries}
}

// EntryNode returns the child node at a sequence entry, unwrapping the
// one-level singleton sequence variant. ok is false for anything else,
// including leaf entries and deeper nesting.
func EntryNode(e *Value) (*Node, bool) {
	if e == nil {
		return nil, false
	}
	switch e.Kind {
	case NodeKind:
		if e.Node != nil {
			return e.Node, true
		}
	case ListKind:
		if len(e.List) == 1 && e.List[0] != nil && e.List[0].Kind == NodeKind && e.List[0].Node != nil {
			return e.List[0].Node, true
		}
	}
	return nil, false
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{Kind: v.Kind, Leaf: v.Leaf}
	if v.Node != nil {
		res.Node = v.Node.Clone()
	}
	if v.List != nil {
		res.List = make([]*Value, len(v.List))
		for i, e := range v.List {
			res.List[i] = e.Clone()
		}
	}
	return res
}
