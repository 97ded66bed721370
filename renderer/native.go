package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// BackendNative is the name of the in-process rasterizing backend.
const BackendNative = "native"

// NativeBackend rasterizes SVG frames in process with the oksvg
// renderer, so no external browser is needed.
type NativeBackend struct {
	width  int
	height int
	inited bool
}

func init() {
	Register(BackendNative, func() Backend {
		return &NativeBackend{}
	})
}

// NewNativeBackend creates a new in-process rasterizing backend.
func NewNativeBackend() *NativeBackend {
	return &NativeBackend{}
}

// Name returns the backend identifier.
func (b *NativeBackend) Name() string {
	return BackendNative
}

// Init sizes the raster target.
func (b *NativeBackend) Init(width, height int) error {
	b.width, b.height = width, height
	b.inited = true
	return nil
}

// Render parses the SVG and draws it onto a white canvas. Drawing
// goes through a dasher so stroke-dasharray and stroke-dashoffset
// take effect.
func (b *NativeBackend) Render(svg []byte) (image.Image, error) {
	if !b.inited {
		return nil, ErrNotInitialized
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(b.width), float64(b.height))

	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(b.width, b.height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(b.width, b.height, scanner), 1)
	return img, nil
}

// Close releases the raster target.
func (b *NativeBackend) Close() {
	b.inited = false
}
