package environment

import (
	"fmt"
	"image/color"
)

// Size is the number of columns (Width) and rows (Height) of a grid
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Cells returns the number of cells in a grid of size s
func (s Size) Cells() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Contains returns whether p lies within a grid of size s
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Renderer draws a grid. Renderers receive copies of everything they
// draw and have no way to modify an Env.
type Renderer interface {
	DisplayGrid(size Size, start, end Position, gridColor color.RGBA,
		persistent, agents []Element) error
}

// Grid keeps the bounds, start and end cells of an Env along with a
// flattened copy of the persistent elements used for drawing.
//
// A Grid never decides whether a cell is blocked. The Env's
// PersistentElements index is the source of truth and the Grid copy is
// rebuilt from it whenever it changes.
type Grid struct {
	size               Size
	start, end         Position
	persistentElements []Element
}

// NewGrid returns a new Grid
func NewGrid(start, end Position, size Size, persistent []Element) *Grid {
	g := &Grid{size: size, start: start, end: end}
	g.UpdatePersistentElements(persistent)
	return g
}

// Size returns the size of the grid
func (g *Grid) Size() Size {
	return g.size
}

// Start returns the start cell of the grid
func (g *Grid) Start() Position {
	return g.start
}

// End returns the end cell of the grid
func (g *Grid) End() Position {
	return g.end
}

// PersistentElements returns a copy of the elements drawn on the grid
func (g *Grid) PersistentElements() []Element {
	list := make([]Element, len(g.persistentElements))
	copy(list, g.persistentElements)
	return list
}

// UpdatePersistentElements replaces the drawn elements wholesale
func (g *Grid) UpdatePersistentElements(list []Element) {
	g.persistentElements = make([]Element, len(list))
	copy(g.persistentElements, list)
}

// Display forwards the grid and the argument agent draws to r
func (g *Grid) Display(r Renderer, gridColor color.RGBA,
	agents []Element) error {
	drawn := make([]Element, len(agents))
	copy(drawn, agents)

	return r.DisplayGrid(g.size, g.start, g.end, gridColor,
		g.PersistentElements(), drawn)
}

func (g *Grid) String() string {
	str := "Grid | Start: %v  |  End: %v  |  Bounds: (%d, %d)  |  " +
		"Persistent: %d"
	return fmt.Sprintf(str, g.start, g.end, g.size.Width, g.size.Height,
		len(g.persistentElements))
}
