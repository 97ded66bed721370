package svg

import (
	"io"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// String serializes the document back to SVG markup. No XML
// declaration is emitted; character data between elements is written
// back verbatim, so a parse/serialize round trip keeps the original
// layout.
func (d *Document) String() string {
	var b strings.Builder
	d.writeNode(&b, d.Root())
	return b.String()
}

// Bytes serializes the document back to SVG markup.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// WriteXML serializes the document to w.
func (d *Document) WriteXML(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func (d *Document) writeNode(b *strings.Builder, id NodeID) {
	n := &d.nodes[id]
	name := d.elementName(n.name.Space, n.name.Local)

	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(d.attrName(a.Name.Space, a.Name.Local))
		b.WriteString(`="`)
		attrEscaper.WriteString(b, a.Value)
		b.WriteByte('"')
	}

	if n.text == "" && len(n.children) == 0 {
		b.WriteString("/>")
		textEscaper.WriteString(b, n.tail)
		return
	}

	b.WriteByte('>')
	textEscaper.WriteString(b, n.text)
	for _, child := range n.children {
		d.writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	textEscaper.WriteString(b, n.tail)
}

// elementName maps a decoded element name back to its source form.
// Names in the default namespace stay bare; declared prefixes are
// reattached; unknown namespaces degrade to the bare local name.
func (d *Document) elementName(space, local string) string {
	if space == "" {
		return local
	}
	if prefix, ok := d.prefixes[space]; ok && prefix != "" {
		return prefix + ":" + local
	}
	return local
}

// attrName maps a decoded attribute name back to its source form.
// The xmlns and xml prefixes survive the decoder literally, so both
// spellings are handled.
func (d *Document) attrName(space, local string) string {
	switch space {
	case "":
		return local
	case "xmlns":
		return "xmlns:" + local
	case "xml", xmlNamespace:
		return "xml:" + local
	}
	if prefix, ok := d.prefixes[space]; ok && prefix != "" {
		return prefix + ":" + local
	}
	return local
}
