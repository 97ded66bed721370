package svganim

import (
	"bufio"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// EncodeGIF assembles rendered frames into an animated GIF that loops
// forever. delayMS is the display time of each frame in milliseconds;
// the GIF format stores hundredths of a second, so the value is
// rounded down to the nearest 10ms.
func EncodeGIF(w io.Writer, frames []image.Image, delayMS int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	anim := &gif.GIF{LoopCount: 0}
	delay := delayMS / 10
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	return gif.EncodeAll(w, anim)
}

// SaveGIF writes the animated GIF to the named file.
func SaveGIF(filename string, frames []image.Image, delayMS int) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := EncodeGIF(bw, frames, delayMS); err != nil {
		return err
	}
	return bw.Flush()
}
