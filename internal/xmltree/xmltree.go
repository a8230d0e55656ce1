// Package xmltree parses an XML document into a generic tree of
// elements with ordered attributes and ordered children. The registry
// engine consumes this tree; it never touches encoding/xml directly.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Node is either a Text fragment or an *Element.
type Node interface {
	isNode()
}

// Text is a character-data fragment between or inside elements.
type Text string

func (Text) isNode() {}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element: tag name, attributes in document order,
// and children (text and elements) in document order.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

func (*Element) isNode() {}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, even if empty.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Child returns the first child element with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for _, n := range e.Children {
		if el, ok := n.(*Element); ok && el.Tag == tag {
			return el
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given tag, in
// document order. An empty tag matches every child element.
func (e *Element) ChildrenNamed(tag string) []*Element {
	var out []*Element
	for _, n := range e.Children {
		if el, ok := n.(*Element); ok && (tag == "" || el.Tag == tag) {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated character data of the element's
// immediate text children (not descendants).
func (e *Element) Text() string {
	var s string
	for _, n := range e.Children {
		if t, ok := n.(Text); ok {
			s += string(t)
		}
	}
	return s
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				// CharData is only valid until the next Token call.
				parent.Children = append(parent.Children, Text(string(t)))
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].Tag)
	}
	return root, nil
}
