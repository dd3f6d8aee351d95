package params

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyDocument is returned when a document has no root element.
var ErrEmptyDocument = errors.New("empty document")

// XMLNode is an element of a parsed XML document.
type XMLNode struct {
	Name     xml.Name
	Attrs    []xml.Attr
	children []Node
	text     []byte
}

// Children returns the child elements in document order. A nil node has none.
func (n *XMLNode) Children() []Node {
	if n == nil {
		return nil
	}

	return n.children
}

// Text returns the character data directly inside the element.
func (n *XMLNode) Text() string {
	if n == nil {
		return ""
	}

	return string(n.text)
}

// Attr returns the value of the attribute with the given local name.
func (n *XMLNode) Attr(local string) (string, bool) {
	if n == nil {
		return "", false
	}

	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}

	return "", false
}

// ParseXML parses data and returns its root element.
//
//	<sum><a>3</a><b>4</b></sum>
//
// yields a node with two children whose texts are "3" and "4".
func ParseXML(data []byte) (*XMLNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *XMLNode
		stack []*XMLNode
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &XMLNode{Name: t.Name, Attrs: t.Copy().Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}

	return root, nil
}
