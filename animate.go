package svganim

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/vasalvit/svganim/renderer"
	"github.com/vasalvit/svganim/svg"
)

// ErrNoFrames is returned when an animation run produces no frames.
var ErrNoFrames = errors.New("no frames rendered")

// Options configure a dash animation run.
type Options struct {
	Frames     int
	DashLength float64
	GapLength  float64
	Step       float64
}

// DashFrameState is the dash stroke state of one arrow line on one
// frame.
type DashFrameState struct {
	DashLength float64
	GapLength  float64
	DashOffset float64
}

// DashState computes the dash stroke state of an arrow line at the
// given frame index. The offset grows by Step per frame and carries
// the arrow's direction sign, which makes the dash pattern march
// toward or away from the arrowhead as frames advance.
func DashState(line ArrowLine, frame int, opts Options) DashFrameState {
	offset := float64(frame) * opts.Step
	return DashFrameState{
		DashLength: opts.DashLength,
		GapLength:  opts.GapLength,
		DashOffset: float64(line.DirectionSign) * offset,
	}
}

// ApplyDashState overwrites the two dash declarations in the node's
// style attribute and leaves every other declaration untouched.
func ApplyDashState(doc *svg.Document, node svg.NodeID, state DashFrameState) {
	style := ParseStyle(doc.Attr(node, "style"))
	style["stroke-dasharray"] = formatFloat(state.DashLength) + " " + formatFloat(state.GapLength)
	style["stroke-dashoffset"] = formatFloat(state.DashOffset)
	doc.SetAttr(node, "style", SerializeStyle(style))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RenderFrames drives the animation's frame loop. For every frame it
// applies each arrow's dash state to the document, serializes the
// document and hands it to the backend. The backend is initialized
// once for the document viewport before the loop and closed on every
// return path. Frames are strictly sequential: a frame's style
// mutations must be rasterized before the next frame's are applied. A
// failure on any frame abandons the whole run; no partial frame list
// is ever returned.
func RenderFrames(doc *svg.Document, lines []ArrowLine, backend renderer.Backend, opts Options) ([]image.Image, error) {
	width, height, err := doc.Viewport()
	if err != nil {
		return nil, err
	}
	if err := backend.Init(width, height); err != nil {
		return nil, fmt.Errorf("initializing %s renderer: %w", backend.Name(), err)
	}
	defer backend.Close()

	var frames []image.Image
	for frame := 0; frame < opts.Frames; frame++ {
		for _, line := range lines {
			ApplyDashState(doc, line.Shaft, DashState(line, frame, opts))
		}
		img, err := backend.Render(doc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("rendering frame %d: %w", frame, err)
		}
		frames = append(frames, img)
		Logger().Debug("frame rendered", "frame", frame, "total", opts.Frames)
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}
