// Command svganim animates the arrows of an SVG diagram and exports
// the result as a looping GIF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vasalvit/svganim"
	"github.com/vasalvit/svganim/renderer"
	"github.com/vasalvit/svganim/svg"
)

func main() {
	frames := flag.Int("frames", 12, "Number of frames.")
	dashLength := flag.Float64("dash-length", 6.0, "Length of dash segments.")
	gapLength := flag.Float64("gap-length", 6.0, "Length of gaps between dashes.")
	step := flag.Float64("step", 2.0, "Dash offset step per frame.")
	duration := flag.Int("duration", 80, "Frame duration in milliseconds.")
	backendName := flag.String("renderer", renderer.BackendChromium,
		"Renderer to use for SVG frames ("+strings.Join(renderer.Available(), ", ")+").")
	scale := flag.Float64("scale", 0,
		"Scale factor for the output viewport. 0 leaves the size unchanged; negative values scale down by the magnitude.")
	verbose := flag.Bool("verbose", false, "Log progress to stderr.")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	if *verbose {
		svganim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := svganim.Options{
		Frames:     *frames,
		DashLength: *dashLength,
		GapLength:  *gapLength,
		Step:       *step,
	}
	if err := run(flag.Arg(0), flag.Arg(1), *backendName, *scale, *duration, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input, output, backendName string, scale float64, durationMS int, opts svganim.Options) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	doc, err := svg.ParseSvgFromReader(f, name, scale)
	if err != nil {
		return err
	}
	doc.RelocateMasksToDefs()

	lines := svganim.FindArrowLines(doc)
	if len(lines) == 0 {
		return errors.New("no arrow lines detected in the SVG")
	}

	backend := renderer.Get(backendName)
	if backend == nil {
		return fmt.Errorf("%w: %q (available: %s)", renderer.ErrBackendNotAvailable,
			backendName, strings.Join(renderer.Available(), ", "))
	}

	rendered, err := svganim.RenderFrames(doc, lines, backend, opts)
	if err != nil {
		return err
	}
	return svganim.SaveGIF(output, rendered, durationMS)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] input.svg output.gif\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(out, "Animates the arrows in an SVG diagram and exports a GIF.\n\nFlags:\n")
	flag.PrintDefaults()
}
