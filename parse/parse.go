// Package parse decodes the JSON interchange form of document trees into
// ir nodes.
//
// The decoder works on the encoding/json token stream rather than
// unmarshalling into maps: Go maps have no key order, and slot order is
// the traversal order, so it has to survive decoding. Objects become
// nodes ("id" and "type" keys are pulled out as discriminators, every
// other key becomes a slot in the order it appears), arrays become
// sequences, and scalars become leaves. Numbers decode as json.Number.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/doctree-format/go-doctree/ir"
)

// Parse decodes a single-rooted document: the input must be a JSON
// object.
func Parse(d []byte) (*ir.Node, error) {
	dec := newDecoder(d)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	n, err := parseNodeBody(dec)
	if err != nil {
		return nil, err
	}
	return n, expectEOF(dec)
}

// ParseEntries decodes a sequence-form document: the input must be a JSON
// array of nodes, possibly using the singleton-sequence wrapping variant.
func ParseEntries(d []byte) ([]*ir.Value, error) {
	dec := newDecoder(d)
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var entries []*ir.Value
	for dec.More() {
		e, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return entries, expectEOF(dec)
}

func newDecoder(d []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	return dec
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrParse, want.String(), tok)
	}
	return nil
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing content after document", ErrParse)
	}
	return nil
}

// parseNodeBody consumes the members of an object whose opening brace has
// already been read, through the closing brace.
func parseNodeBody(dec *json.Decoder) (*ir.Node, error) {
	n := &ir.Node{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrParse, keyTok)
		}
		switch key {
		case "id", "type":
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			s, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q must be a string, got %v", ErrParse, key, tok)
			}
			if key == "id" {
				n.ID = s
			} else {
				n.Type = s
			}
		default:
			v, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			n.Slots = append(n.Slots, ir.Slot{Name: key, Value: v})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}

// parseValue consumes one JSON value and maps it onto the slot value
// union: object to child node, array to sequence, scalar to leaf.
func parseValue(dec *json.Decoder) (*ir.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return ir.Leaf(tok), nil
	}
	switch delim {
	case '{':
		node, err := parseNodeBody(dec)
		if err != nil {
			return nil, err
		}
		return ir.Child(node), nil
	case '[':
		var entries []*ir.Value
		for dec.More() {
			e, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return ir.ListOf(entries...), nil
	}
	return nil, fmt.Errorf("%w: unexpected %v", ErrParse, tok)
}
