package svganim

import (
	"github.com/vasalvit/svganim/svg"
)

// ArrowLine pairs an arrow's shaft path with the direction its head
// points. DirectionSign is -1 when the head sits at the shaft's path
// end and +1 when it sits at the path start.
type ArrowLine struct {
	Shaft         svg.NodeID
	DirectionSign int
}

// pathInfo is one candidate shape's representative geometry: the
// longest of its subpaths, kept together with that subpath's text.
type pathInfo struct {
	node    svg.NodeID
	geom    PathGeometry
	subpath string
}

// FindArrowLines scans every masked group of the document for an
// arrow: at least two paths, the longest of which is taken as the
// shaft while the end points of the others estimate where the
// arrowhead sits. Groups with fewer than two usable geometries are
// skipped silently; a document may well yield no arrows at all.
//
// As a side effect the shaft's d attribute is rewritten to just its
// longest subpath, leaving a single unambiguous stroke for dashing.
func FindArrowLines(doc *svg.Document) []ArrowLine {
	var arrows []ArrowLine
	for _, group := range doc.MaskedGroups() {
		var candidates []svg.NodeID
		for _, path := range doc.PathsUnder(group) {
			if doc.Attr(path, "d") != "" {
				candidates = append(candidates, path)
			}
		}
		if len(candidates) < 2 {
			Logger().Debug("masked group skipped", "paths", len(candidates))
			continue
		}

		var infos []pathInfo
		for _, path := range candidates {
			if info, ok := representative(doc, path); ok {
				infos = append(infos, info)
			}
		}
		if len(infos) < 2 {
			Logger().Debug("masked group skipped", "usable", len(infos))
			continue
		}

		shaft := infos[0]
		for _, info := range infos[1:] {
			if info.geom.Length > shaft.geom.Length {
				shaft = info
			}
		}

		var sumX, sumY float64
		heads := 0
		for _, info := range infos {
			if info.node == shaft.node {
				continue
			}
			sumX += info.geom.End[0]
			sumY += info.geom.End[1]
			heads++
		}
		if heads == 0 {
			continue
		}
		tip := Tuple{sumX / float64(heads), sumY / float64(heads)}

		sign := 1
		if distance(shaft.geom.End, tip) <= distance(shaft.geom.Start, tip) {
			sign = -1
		}

		if shaft.subpath != "" {
			doc.SetAttr(shaft.node, "d", shaft.subpath)
		}
		arrows = append(arrows, ArrowLine{Shaft: shaft.node, DirectionSign: sign})
		Logger().Debug("arrow line detected",
			"length", shaft.geom.Length, "sign", sign, "heads", heads)
	}
	return arrows
}

// representative evaluates every subpath of the shape's path data and
// keeps the one with the greatest length, first seen winning ties.
// The second result is false when no subpath yields geometry.
func representative(doc *svg.Document, path svg.NodeID) (pathInfo, bool) {
	best := pathInfo{node: path}
	found := false
	for _, sp := range SplitSubpaths(TokenizePath(doc.Attr(path, "d"))) {
		geom, ok := EvaluateSubpath(sp)
		if !ok {
			continue
		}
		if !found || geom.Length > best.geom.Length {
			best.geom = geom
			best.subpath = sp.String()
			found = true
		}
	}
	return best, found
}
