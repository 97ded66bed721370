package svg

// RelocateMasksToDefs moves every mask element under the root's defs
// element, creating defs as the root's first child when the document
// has none. Renderers resolve mask references most reliably when the
// definitions live inside defs.
func (d *Document) RelocateMasksToDefs() {
	root := d.Root()

	defs := NodeID(-1)
	for _, child := range d.nodes[root].children {
		if d.Tag(child) == "defs" {
			defs = child
			break
		}
	}
	if defs == -1 {
		defs = d.newElement("defs")
		d.insertChild(root, 0, defs)
	}

	var masks []NodeID
	d.walk(root, func(id NodeID) {
		if d.Tag(id) == "mask" {
			masks = append(masks, id)
		}
	})

	for _, mask := range masks {
		parent := d.Parent(mask)
		if parent == -1 || parent == defs {
			continue
		}
		d.removeChild(parent, mask)
		d.appendChild(defs, mask)
	}
}
