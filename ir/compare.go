package ir

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes order by Type, then ID, then by slots pairwise (name, then value).
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := strings.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	n := min(len(a.Slots), len(b.Slots))
	for i := range n {
		if c := strings.Compare(a.Slots[i].Name, b.Slots[i].Name); c != 0 {
			return c
		}
		if c := CompareValues(a.Slots[i].Value, b.Slots[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Slots), len(b.Slots))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// CompareValues orders slot values. Kinds rank Leaf < Node < List.
func CompareValues(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case LeafKind:
		return compareLeaves(a.Leaf, b.Leaf)
	case NodeKind:
		return Compare(a.Node, b.Node)
	case ListKind:
		n := min(len(a.List), len(b.List))
		for i := range n {
			if c := CompareValues(a.List[i], b.List[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.List), len(b.List))
	}
	return 0
}

// compareLeaves orders scalar payloads.
// Rank: nil < bool < number < string < anything else.
func compareLeaves(a, b any) int {
	rankA, rankB := leafRank(a), leafRank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch x := a.(type) {
	case nil:
		return 0
	case bool:
		y := b.(bool)
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	case string:
		return strings.Compare(x, b.(string))
	}
	if rankA == 2 {
		xf, xok := leafFloat(a)
		yf, yok := leafFloat(b)
		if xok && yok {
			return cmp.Compare(xf, yf)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func leafRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case json.Number, int, int64, float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}

func leafFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
