// Package xmltree builds a queryable element tree with per-node source
// lines on top of encoding/xml token streaming. It is the parsed-document
// collaborator the checks run against.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
)

// Document is one parsed XML document.
type Document struct {
	Filename string
	Root     *Element
}

// Element is one node of the parsed tree.
type Element struct {
	Name     string // local tag name
	Space    string // namespace URI, empty when none
	Attrs    []xml.Attr
	Line     int // 1-based source line of the start tag
	Text     string
	Parent   *Element
	Children []*Element
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// FindAll returns, in document order, every descendant whose local name
// matches one of names. The root itself is included when it matches.
func (d *Document) FindAll(names ...string) []*Element {
	if d.Root == nil {
		return nil
	}
	var out []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, name := range names {
			if e.Name == name {
				out = append(out, e)
				break
			}
		}
		for _, child := range e.Children {
			walk(child)
		}
	}
	walk(d.Root)
	return out
}

// Parse reads one XML document from r. Failures are reported as *ParseError
// carrying a kind discriminant so callers can decide between retrying with a
// wrapper, suppressing, or recording the entry.
func Parse(r io.Reader, filename string) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{Filename: filename}

	var stack []*Element
	sawElement := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, convertError(err, filename, sawElement)
		}
		line, col := dec.InputPos()

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && doc.Root != nil {
				return nil, &ParseError{
					Filename: filename,
					Line:     line,
					Column:   col,
					Message:  "extra content after end of document",
					Kind:     ErrExtraContent,
				}
			}
			el := &Element{
				Name:  t.Name.Local,
				Space: t.Name.Space,
				Attrs: t.Attr,
				Line:  line,
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				el.Parent = parent
				parent.Children = append(parent.Children, el)
			} else {
				doc.Root = el
			}
			stack = append(stack, el)
			sawElement = true
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			} else if doc.Root != nil && strings.TrimSpace(string(t)) != "" {
				return nil, &ParseError{
					Filename: filename,
					Line:     line,
					Column:   col,
					Message:  "extra content after end of document",
					Kind:     ErrExtraContent,
				}
			}
		}
	}

	if doc.Root == nil {
		return nil, &ParseError{
			Filename: filename,
			Line:     1,
			Column:   1,
			Message:  "document is not well-formed XML",
			Kind:     ErrNotXML,
		}
	}
	return doc, nil
}

// ParseString is Parse over an in-memory fragment.
func ParseString(s, filename string) (*Document, error) {
	return Parse(strings.NewReader(s), filename)
}
