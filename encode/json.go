package encode

import (
	"encoding/json"
	"io"

	"github.com/doctree-format/go-doctree/ir"
)

// EncodeJSON writes the tree in its JSON interchange form, slots in order.
func EncodeJSON(node *ir.Node, w io.Writer) error {
	d, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
