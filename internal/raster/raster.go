// Package raster renders a run's space-time grid as a 2-D image: time on
// the vertical axis growing downward, space on the horizontal axis.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/mesh-physics/rule30/pkg/types"
)

// Palette names accepted by Options.
const (
	PaletteBinary   = "binary"   // dead white, live black
	PaletteInverted = "inverted" // dead black, live white
	PaletteAmber    = "amber"    // dead near-black, live amber
)

// ErrUnknownPalette is returned for a palette name not listed above.
var ErrUnknownPalette = errors.New("unknown palette")

// Options controls the rendered output.
type Options struct {
	// Palette selects the two-color mapping; empty means binary.
	Palette string

	// Scale is the integer upscaling factor; values below 1 mean 1
	// (one pixel per cell).
	Scale int
}

var palettes = map[string][2]color.NRGBA{
	PaletteBinary:   {{R: 255, G: 255, B: 255, A: 255}, {A: 255}},
	PaletteInverted: {{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	PaletteAmber:    {{R: 24, G: 16, B: 8, A: 255}, {R: 255, G: 176, B: 0, A: 255}},
}

// Render draws the grid with one pixel per cell, then upscales by
// Options.Scale using nearest-neighbor so cell edges stay sharp.
func Render(g *types.Grid, opts Options) (image.Image, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	name := opts.Palette
	if name == "" {
		name = PaletteBinary
	}
	pal, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Rows()))
	for t := 0; t < g.Rows(); t++ {
		row := g.Row(t)
		for x, c := range row {
			img.SetNRGBA(x, t, pal[c&1])
		}
	}

	if opts.Scale <= 1 {
		return img, nil
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, g.Width()*opts.Scale, g.Rows()*opts.Scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled, nil
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
