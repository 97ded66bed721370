// Package svg holds an SVG document as a round-trippable element tree.
// Nodes live in a single arena owned by the Document and are addressed
// by NodeID handles, so every attribute mutation goes through the
// Document itself.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/net/html/charset"
)

// NodeID addresses one element of a Document. The zero value is the
// document's root element.
type NodeID int

// node is one element in the document arena. text is the character
// data before the first child, tail the character data between this
// element's end tag and the next sibling.
type node struct {
	name     xml.Name
	attrs    []xml.Attr
	text     string
	tail     string
	parent   NodeID
	children []NodeID
}

// Document represents a parsed SVG file.
type Document struct {
	Name      string
	Transform *mt.Transform
	nodes     []node
	prefixes  map[string]string
}

// ParseSvg parses an SVG string into a Document. A scale greater than
// zero scales the rendered viewport up by that factor, a negative
// scale shrinks it by the magnitude, zero leaves it unchanged.
func ParseSvg(str string, name string, scale float64) (*Document, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses a Document from an io.Reader.
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Document, error) {
	doc := &Document{
		Name:      name,
		Transform: mt.NewTransform(),
		prefixes:  make(map[string]string),
	}
	if scale > 0 {
		doc.Transform.Scale(scale, scale)
	}
	if scale < 0 {
		doc.Transform.Scale(1.0/-scale, 1.0/-scale)
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := doc.decode(decoder); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	return doc, nil
}

// decode builds the arena from the decoder's token stream. Comments,
// directives and processing instructions are dropped; everything else
// survives a parse/serialize round trip.
func (d *Document) decode(decoder *xml.Decoder) error {
	var stack []NodeID
	rootSeen := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 && rootSeen {
				return fmt.Errorf("multiple root elements")
			}
			n := node{
				name:   tok.Name,
				attrs:  append([]xml.Attr(nil), tok.Attr...),
				parent: -1,
			}
			d.recordPrefixes(n.attrs)
			id := NodeID(len(d.nodes))
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				n.parent = parent
				d.nodes[parent].children = append(d.nodes[parent].children, id)
			} else {
				rootSeen = true
			}
			d.nodes = append(d.nodes, n)
			stack = append(stack, id)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := &d.nodes[stack[len(stack)-1]]
			if len(cur.children) == 0 {
				cur.text += string(tok)
			} else {
				last := cur.children[len(cur.children)-1]
				d.nodes[last].tail += string(tok)
			}
		}
	}
	if !rootSeen {
		return fmt.Errorf("no root element")
	}
	return nil
}

// recordPrefixes remembers which prefix each namespace URI was
// declared under, for use when the tree is written back out. The
// first declaration of a URI wins.
func (d *Document) recordPrefixes(attrs []xml.Attr) {
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			if _, ok := d.prefixes[a.Value]; !ok {
				d.prefixes[a.Value] = a.Name.Local
			}
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			if _, ok := d.prefixes[a.Value]; !ok {
				d.prefixes[a.Value] = ""
			}
		}
	}
}
