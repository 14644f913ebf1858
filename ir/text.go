package ir

import "strings"

// TextContent returns the concatenation, in document order, of every
// string-valued leaf payload in n's subtree.
func (n *Node) TextContent() string {
	buf := &strings.Builder{}
	n.appendText(buf)
	return buf.String()
}

func (n *Node) appendText(buf *strings.Builder) {
	for i := range n.Slots {
		n.Slots[i].Value.appendText(buf)
	}
}

func (v *Value) appendText(buf *strings.Builder) {
	if v == nil {
		return
	}
	switch v.Kind {
	case LeafKind:
		if s, ok := v.Leaf.(string); ok {
			buf.WriteString(s)
		}
	case NodeKind:
		if v.Node != nil {
			v.Node.appendText(buf)
		}
	case ListKind:
		for _, e := range v.List {
			e.appendText(buf)
		}
	}
}
