package ir

// Node is a single document tree node. ID and Type are discriminators for
// consumers; the slots carry structure. Slot order is insertion order.
type Node struct {
	ID    string
	Type  string
	Slots []Slot
}

// Slot is a named field of a node whose value may hold children.
type Slot struct {
	Name  string
	Value *Value
}

func New(typ string) *Node {
	return &Node{Type: typ}
}

func NewWithID(id, typ string) *Node {
	return &Node{ID: id, Type: typ}
}

// Set appends a slot, or overwrites the value of an existing slot with the
// same name keeping its position. Returns n for chaining.
func (n *Node) Set(name string, v *Value) *Node {
	for i := range n.Slots {
		if n.Slots[i].Name == name {
			n.Slots[i].Value = v
			return n
		}
	}
	n.Slots = append(n.Slots, Slot{Name: name, Value: v})
	return n
}

// Get returns the value of the named slot, or nil if absent.
func (n *Node) Get(name string) *Value {
	for i := range n.Slots {
		if n.Slots[i].Name == name {
			return n.Slots[i].Value
		}
	}
	return nil
}

// Remove deletes the named slot, reporting whether it was present.
func (n *Node) Remove(name string) bool {
	for i := range n.Slots {
		if n.Slots[i].Name == name {
			n.Slots = append(n.Slots[:i], n.Slots[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Node) SlotNames() []string {
	res := make([]string, len(n.Slots))
	for i := range n.Slots {
		res[i] = n.Slots[i].Name
	}
	return res
}

// Children returns the child nodes of n across all slots, in document
// order, unwrapping singleton sequence entries.
func (n *Node) Children() []*Node {
	var res []*Node
	for i := range n.Slots {
		v := n.Slots[i].Value
		if v == nil {
			continue
		}
		switch v.Kind {
		case NodeKind:
			if v.Node != nil {
				res = append(res, v.Node)
			}
		case ListKind:
			for _, e := range v.List {
				if c, ok := EntryNode(e); ok {
					res = append(res, c)
				}
			}
		}
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.ID = n.ID
	dst.Type = n.Type
	dst.Slots = make([]Slot, len(n.Slots))
	for i := range n.Slots {
		dst.Slots[i] = Slot{
			Name:  n.Slots[i].Name,
			Value: n.Slots[i].Value.Clone(),
		}
	}
	return dst
}
