package doctree

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/doctree-format/go-doctree/debug"
	"github.com/doctree-format/go-doctree/ir"
	"github.com/doctree-format/go-doctree/parse"
)

// Patch applies an RFC 6902 JSON patch to a document tree and returns the
// patched tree. The document round-trips through its JSON interchange
// form, so patch paths address the same keys a parser would produce
// ("/children/1/value" and so on). doc itself is not modified.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch %d op(s) on %s tree\n", len(ops), doc.Type)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, err
	}
	return res, nil
}
