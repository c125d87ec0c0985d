package environment

import "fmt"

// Position is an integer cell coordinate in a grid. Positions are
// values and are used directly as map keys.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position translated by delta
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// index returns the row-major index of p in a grid of the given width
func (p Position) index(width int) int {
	return p.Y*width + p.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
