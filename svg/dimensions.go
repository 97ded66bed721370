package svg

import (
	"errors"
	"math"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// ErrNoDimensions is returned when neither the width/height attributes
// nor the viewBox give the document a size.
var ErrNoDimensions = errors.New("svg: width and height could not be determined")

// Dimensions reports the document's intrinsic width and height. The
// width and height attributes are consulted first, taking the leading
// numeric part so unit suffixes like "px" are tolerated; a missing
// value falls back to the viewBox extent.
func (d *Document) Dimensions() (float64, float64, error) {
	root := d.Root()
	width, wok := parseLength(d.Attr(root, "width"))
	height, hok := parseLength(d.Attr(root, "height"))

	if viewBox := d.Attr(root, "viewBox"); (!wok || !hok) && viewBox != "" {
		parts := strings.Fields(viewBox)
		if len(parts) == 4 {
			vals := make([]float64, 0, 4)
			for _, p := range parts {
				v, err := strconv.ParseFloat(p, 64)
				if err != nil {
					break
				}
				vals = append(vals, v)
			}
			if len(vals) == 4 {
				if !wok {
					width, wok = vals[2], true
				}
				if !hok {
					height, hok = vals[3], true
				}
			}
		}
	}

	if !wok || !hok {
		return 0, 0, ErrNoDimensions
	}
	return width, height, nil
}

// Viewport returns the pixel size of the rendering viewport: the
// document dimensions with the document transform applied, rounded to
// the nearest integer.
func (d *Document) Viewport() (int, int, error) {
	w, h, err := d.Dimensions()
	if err != nil {
		return 0, 0, err
	}
	sw, sh := d.Transform.Apply(w, h)
	return int(math.Round(sw)), int(math.Round(sh)), nil
}

// parseLength extracts the first number from an attribute value.
func parseLength(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	lex, _ := gl.Lex("length", value)
	for {
		i := lex.NextItem()
		switch i.Type {
		case gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		case gl.ItemError, gl.ItemEOS:
			return 0, false
		}
	}
}
