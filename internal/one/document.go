package one

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tonetui/tone/internal/errdef"
)

// Document is a decoded OpenNebula XML body. Element trees become nested
// maps, repeated sibling elements collapse into slices, and childless
// elements become their text content. The root element is retained, so a
// one.vm.info body is addressed as "VM.ID", "VM.NAME" and so on, and a
// pool body as "VM_POOL.VM".
type Document struct {
	root any
}

// ParseDocument decodes an OpenNebula XML body into a Document.
func ParseDocument(body string) (*Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))
	root := make(map[string]any)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeParse, err, "parsing OpenNebula XML")
		}
		if start, ok := tok.(xml.StartElement); ok {
			child, err := decodeElement(decoder, start)
			if err != nil {
				return nil, errdef.Wrap(errdef.CodeParse, err, "parsing OpenNebula XML")
			}
			insertChild(root, start.Name.Local, child)
		}
	}
	return &Document{root: root}, nil
}

// decodeElement consumes tokens up to start's matching end element.
func decodeElement(decoder *xml.Decoder, start xml.StartElement) (any, error) {
	children := make(map[string]any)
	var text strings.Builder
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(decoder, tok)
			if err != nil {
				return nil, err
			}
			insertChild(children, tok.Name.Local, child)
		case xml.CharData:
			text.Write(tok)
		case xml.EndElement:
			if len(children) == 0 {
				return strings.TrimSpace(text.String()), nil
			}
			return children, nil
		}
	}
}

// insertChild adds a decoded element, collapsing repeated siblings of the
// same name into a slice.
func insertChild(parent map[string]any, name string, child any) {
	existing, ok := parent[name]
	if !ok {
		parent[name] = child
		return
	}
	if arr, ok := existing.([]any); ok {
		parent[name] = append(arr, child)
		return
	}
	parent[name] = []any{existing, child}
}

// Lookup resolves a dotted path like "VM_POOL.VM" or "TEMPLATE.CPU".
func (doc *Document) Lookup(path string) (any, bool) {
	current := doc.root
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String resolves path to a display string, with "-" standing in for a
// missing or empty value. Single-element slices unwrap to their element;
// anything still structured is summarized.
func (doc *Document) String(path string) string {
	node, ok := doc.Lookup(path)
	if !ok {
		return "-"
	}
	return displayString(node)
}

func displayString(node any) string {
	switch node := node.(type) {
	case string:
		if node == "" {
			return "-"
		}
		return node
	case []any:
		switch len(node) {
		case 0:
			return "-"
		case 1:
			return displayString(node[0])
		default:
			return fmt.Sprintf("[%d items]", len(node))
		}
	case map[string]any:
		return "[object]"
	}
	return "-"
}

// Int resolves path to an integer; ok is false when the value is missing
// or not numeric.
func (doc *Document) Int(path string) (int, bool) {
	n, err := strconv.Atoi(doc.String(path))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Count returns how many values sit at path, counting a lone value as 1
// and a missing path as 0.
func (doc *Document) Count(path string) int {
	node, ok := doc.Lookup(path)
	if !ok {
		return 0
	}
	if arr, ok := node.([]any); ok {
		return len(arr)
	}
	return 1
}

// List resolves path to the child documents under it. A single object is
// wrapped into a one-element slice, the way OpenNebula collapses
// single-entry pools; a missing path is an empty pool.
func (doc *Document) List(path string) []*Document {
	node, ok := doc.Lookup(path)
	if !ok {
		return nil
	}
	switch node := node.(type) {
	case []any:
		docs := make([]*Document, 0, len(node))
		for _, el := range node {
			docs = append(docs, &Document{root: el})
		}
		return docs
	case map[string]any:
		return []*Document{{root: node}}
	}
	return nil
}

// MarshalJSON renders the document tree, which is how the describe overlay
// shows an object.
func (doc *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(doc.root)
}
