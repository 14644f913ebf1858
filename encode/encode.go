// Package encode renders document trees as indented text for humans.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doctree-format/go-doctree/ir"
)

type EncState struct {
	indent int

	Color func(ColorAttr, string) string
}

// Encode writes a human-readable rendering of the tree to w. The format
// is line-oriented: discriminators first, then slots in slot order, with
// sequence entries bulleted and the singleton-sequence wrapping variant
// shown as a nested bullet.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	for _, line := range es.nodeLines(node) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}

func (es *EncState) nodeLines(n *ir.Node) []string {
	if n == nil {
		return []string{es.color(ValueColor, "null")}
	}
	var lines []string
	if n.ID != "" {
		lines = append(lines, es.color(FieldColor, "id")+": "+es.color(IDColor, strconv.Quote(n.ID)))
	}
	lines = append(lines, es.color(FieldColor, "type")+": "+es.color(TypeColor, n.Type))
	for i := range n.Slots {
		lines = append(lines, es.slotLines(n.Slots[i])...)
	}
	return lines
}

func (es *EncState) slotLines(s ir.Slot) []string {
	key := es.color(FieldColor, s.Name) + ":"
	v := s.Value
	if v == nil {
		return []string{key}
	}
	switch v.Kind {
	case ir.LeafKind:
		return []string{key + " " + es.color(ValueColor, leafString(v.Leaf))}
	case ir.NodeKind:
		if v.Node == nil {
			return []string{key}
		}
		lines := []string{key}
		pad := strings.Repeat(" ", es.indent)
		for _, ln := range es.nodeLines(v.Node) {
			lines = append(lines, pad+ln)
		}
		return lines
	case ir.ListKind:
		lines := []string{key}
		for _, e := range v.List {
			lines = append(lines, es.entryLines(e)...)
		}
		return lines
	}
	return []string{key}
}

func (es *EncState) entryLines(e *ir.Value) []string {
	if e == nil {
		return []string{es.bullet(es.color(ValueColor, "null"))}
	}
	switch e.Kind {
	case ir.LeafKind:
		return []string{es.bullet(es.color(ValueColor, leafString(e.Leaf)))}
	case ir.NodeKind:
		return es.bulleted(es.nodeLines(e.Node))
	case ir.ListKind:
		var inner []string
		for _, ee := range e.List {
			inner = append(inner, es.entryLines(ee)...)
		}
		if len(inner) == 0 {
			inner = []string{es.color(ValueColor, "[]")}
		}
		return es.bulleted(inner)
	}
	return nil
}

func (es *EncState) bullet(s string) string {
	return es.color(SepColor, "- ") + s
}

func (es *EncState) bulleted(lines []string) []string {
	res := make([]string, len(lines))
	for i, ln := range lines {
		if i == 0 {
			res[i] = es.bullet(ln)
			continue
		}
		res[i] = "  " + ln
	}
	return res
}

func leafString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}
