package doctree

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/doctree-format/go-doctree/encode"
	"github.com/doctree-format/go-doctree/ir"
)

// Diff returns a line diff of the encoded forms of two trees. Unchanged
// lines are prefixed with two spaces, removals with "- " and insertions
// with "+ ". It returns "" when the trees encode identically.
func Diff(a, b *ir.Node) string {
	at := encode.MustString(a) + "\n"
	bt := encode.MustString(b) + "\n"
	if at == bt {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitLines(d.Text) {
			buf.WriteString(prefix + ln + "\n")
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
