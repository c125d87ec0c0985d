// Package render draws grids to PNG images
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	env "github.com/samuelfneumann/gridagents/environment"
)

// Colors used for the start and end cells
var (
	StartColor = color.RGBA{R: 120, G: 160, B: 230, A: 255}
	EndColor   = color.RGBA{R: 230, G: 200, B: 60, A: 255}
)

// PNG renders grids to PNG files, one file per call to DisplayGrid.
// Each cell is drawn as a CellSize x CellSize square, persistent
// elements fill their cells and agents are drawn as circles.
type PNG struct {
	cellSize int
	filename func() string
	last     image.Image
}

// NewPNG returns a new PNG renderer. The filename function is called
// once per frame to name the file the frame is saved to. If filename is
// nil, frames are only kept in memory.
func NewPNG(cellSize int, filename func() string) (*PNG, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("newPNG: cell size must be positive, "+
			"have %d", cellSize)
	}
	return &PNG{cellSize: cellSize, filename: filename}, nil
}

// DisplayGrid implements the environment.Renderer interface
func (p *PNG) DisplayGrid(size env.Size, start, end env.Position,
	gridColor color.RGBA, persistent, agents []env.Element) error {
	if size.Cells() == 0 {
		return fmt.Errorf("displayGrid: cannot draw grid of size (%d, %d)",
			size.Width, size.Height)
	}

	cs := float64(p.cellSize)
	dc := gg.NewContext(size.Width*p.cellSize, size.Height*p.cellSize)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	fill := func(pos env.Position, c color.Color) {
		dc.DrawRectangle(float64(pos.X)*cs, float64(pos.Y)*cs, cs, cs)
		dc.SetColor(c)
		dc.Fill()
	}

	fill(start, StartColor)
	fill(end, EndColor)
	for _, element := range persistent {
		fill(element.Position, element.Color)
	}

	for _, agent := range agents {
		x := float64(agent.X)*cs + cs/2
		y := float64(agent.Y)*cs + cs/2
		dc.DrawCircle(x, y, cs/3)
		dc.SetColor(agent.Color)
		dc.Fill()
	}

	// Grid lines
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for i := 0; i <= size.Width; i++ {
		x := float64(i) * cs
		dc.DrawLine(x, 0, x, float64(size.Height)*cs)
	}
	for j := 0; j <= size.Height; j++ {
		y := float64(j) * cs
		dc.DrawLine(0, y, float64(size.Width)*cs, y)
	}
	dc.Stroke()

	p.last = dc.Image()

	if p.filename == nil {
		return nil
	}
	if err := dc.SavePNG(p.filename()); err != nil {
		return fmt.Errorf("displayGrid: could not save frame: %w", err)
	}
	return nil
}

// Last returns the most recently drawn frame, or nil if nothing has
// been drawn
func (p *PNG) Last() image.Image {
	return p.last
}
