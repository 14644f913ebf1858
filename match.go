// Package doctree is a toolkit for document trees: structural matching,
// diffing, and RFC 6902 patching over the ir node model, alongside the
// transform package's post-order tree transformer.
package doctree

import (
	"github.com/doctree-format/go-doctree/debug"
	"github.com/doctree-format/go-doctree/ir"
)

// Match reports whether pattern structurally matches doc. An empty
// pattern Type matches any node type and an empty pattern ID matches any
// id. Every pattern slot must be present in doc and match; doc slots
// absent from the pattern are ignored. Sequence patterns match entry by
// entry and must have the same length; the singleton-sequence wrapping
// variant matches its unwrapped form.
func Match(doc, pattern *ir.Node) bool {
	if doc == nil || pattern == nil {
		return doc == pattern
	}
	if debug.Match() {
		debug.Logf("match type %q against %q\n", pattern.Type, doc.Type)
	}
	if pattern.Type != "" && pattern.Type != doc.Type {
		return false
	}
	if pattern.ID != "" && pattern.ID != doc.ID {
		return false
	}
	for i := range pattern.Slots {
		dv := doc.Get(pattern.Slots[i].Name)
		if dv == nil {
			return false
		}
		if !matchValue(dv, pattern.Slots[i].Value) {
			return false
		}
	}
	return true
}

func matchValue(dv, pv *ir.Value) bool {
	if pv == nil {
		return true
	}
	if pn, pok := ir.EntryNode(pv); pok {
		dn, dok := ir.EntryNode(dv)
		return dok && Match(dn, pn)
	}
	switch pv.Kind {
	case ir.LeafKind:
		return dv != nil && dv.Kind == ir.LeafKind && ir.CompareValues(dv, pv) == 0
	case ir.ListKind:
		if dv == nil || dv.Kind != ir.ListKind || len(dv.List) != len(pv.List) {
			return false
		}
		for i := range pv.List {
			if !matchValue(dv.List[i], pv.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}
