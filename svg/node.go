package svg

import "encoding/xml"

// Root returns the document's root element.
func (d *Document) Root() NodeID {
	return 0
}

// Tag returns the local element name of id.
func (d *Document) Tag(id NodeID) string {
	return d.nodes[id].name.Local
}

// Parent returns the parent of id, or -1 for the root.
func (d *Document) Parent(id NodeID) NodeID {
	return d.nodes[id].parent
}

// Children returns the element children of id in document order.
func (d *Document) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), d.nodes[id].children...)
}

// Attr returns the value of the named unprefixed attribute, or the
// empty string when it is absent.
func (d *Document) Attr(id NodeID, name string) string {
	for _, a := range d.nodes[id].attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named unprefixed attribute is present,
// even with an empty value.
func (d *Document) HasAttr(id NodeID, name string) bool {
	for _, a := range d.nodes[id].attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute, keeping its position when it
// already exists and appending it otherwise.
func (d *Document) SetAttr(id NodeID, name, value string) {
	n := &d.nodes[id]
	for i, a := range n.attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// walk visits id and all of its descendants in document order.
func (d *Document) walk(id NodeID, visit func(NodeID)) {
	visit(id)
	for _, child := range d.nodes[id].children {
		d.walk(child, visit)
	}
}

// MaskedGroups returns every g element carrying a mask attribute, in
// document order. These are the candidate groups the arrow detector
// inspects.
func (d *Document) MaskedGroups() []NodeID {
	var groups []NodeID
	d.walk(d.Root(), func(id NodeID) {
		if d.Tag(id) == "g" && d.HasAttr(id, "mask") {
			groups = append(groups, id)
		}
	})
	return groups
}

// PathsUnder returns every path element beneath group, in document
// order.
func (d *Document) PathsUnder(group NodeID) []NodeID {
	var paths []NodeID
	d.walk(group, func(id NodeID) {
		if id != group && d.Tag(id) == "path" {
			paths = append(paths, id)
		}
	})
	return paths
}

// newElement appends a fresh element to the arena without linking it
// to a parent. The element inherits the namespace of the root so it
// serializes without a prefix.
func (d *Document) newElement(tag string) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, node{
		name:   xml.Name{Space: d.nodes[d.Root()].name.Space, Local: tag},
		parent: -1,
	})
	return id
}

// insertChild links child into parent's children at position at.
func (d *Document) insertChild(parent NodeID, at int, child NodeID) {
	kids := d.nodes[parent].children
	kids = append(kids, 0)
	copy(kids[at+1:], kids[at:])
	kids[at] = child
	d.nodes[parent].children = kids
	d.nodes[child].parent = parent
}

// appendChild links child as parent's last child.
func (d *Document) appendChild(parent, child NodeID) {
	d.nodes[parent].children = append(d.nodes[parent].children, child)
	d.nodes[child].parent = parent
}

// removeChild unlinks child from parent. The node stays in the arena
// and can be re-linked elsewhere.
func (d *Document) removeChild(parent, child NodeID) {
	kids := d.nodes[parent].children
	for i, c := range kids {
		if c == child {
			d.nodes[parent].children = append(kids[:i], kids[i+1:]...)
			d.nodes[child].parent = -1
			return
		}
	}
}
