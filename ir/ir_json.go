package ir

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the node as the JSON interchange form produced by
// document parsers: an object with "id" and "type" keys followed by the
// slots, in slot order. The inverse lives in the parse package, which
// decodes through the token stream to keep slot order (encoding/json maps
// would lose it).
func (n *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	first := true
	writeKey := func(k string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		d, _ := json.Marshal(k)
		buf.Write(d)
		buf.WriteByte(':')
	}
	if n.ID != "" {
		writeKey("id")
		d, err := json.Marshal(n.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	writeKey("type")
	d, err := json.Marshal(n.Type)
	if err != nil {
		return nil, err
	}
	buf.Write(d)
	for i := range n.Slots {
		writeKey(n.Slots[i].Name)
		d, err := json.Marshal(n.Slots[i].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	switch v.Kind {
	case LeafKind:
		return json.Marshal(v.Leaf)
	case NodeKind:
		return json.Marshal(v.Node)
	case ListKind:
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('[')
		for i, e := range v.List {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(e)
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return []byte("null"), nil
}
