package environment

import (
	"image/color"
	"sort"
)

// Element is a colored cell. Elements describe both persistent
// elements (walls, goals) and agents when drawing a grid.
type Element struct {
	Position
	Color color.RGBA
}

// PersistentElements indexes elements with a long term position, such
// as obstacles and goal cells, by their position. Each position holds
// at most one element.
//
// The index is a hash map rather than part of the dense grid so that
// agents can check the content of a cell in O(1).
type PersistentElements struct {
	elements map[Position]color.RGBA
}

// NewPersistentElements returns a new index holding a copy of elements
func NewPersistentElements(elements map[Position]color.RGBA) *PersistentElements {
	index := make(map[Position]color.RGBA, len(elements))
	for pos, c := range elements {
		index[pos] = c
	}
	return &PersistentElements{index}
}

// Insert places an element at p, overwriting any element already
// there. The position is not checked against any grid bounds.
func (p *PersistentElements) Insert(pos Position, c color.RGBA) {
	p.elements[pos] = c
}

// Remove removes and returns the element at pos. The returned boolean
// is false if there was no element at pos.
func (p *PersistentElements) Remove(pos Position) (color.RGBA, bool) {
	c, ok := p.elements[pos]
	if ok {
		delete(p.elements, pos)
	}
	return c, ok
}

// Move relocates the element at current to next, overwriting whatever
// is at next. If current holds no element nothing changes and Move
// returns false.
func (p *PersistentElements) Move(current, next Position) bool {
	c, ok := p.Remove(current)
	if !ok {
		return false
	}
	p.elements[next] = c
	return true
}

// Contains returns whether an element exists at pos
func (p *PersistentElements) Contains(pos Position) bool {
	_, ok := p.elements[pos]
	return ok
}

// At returns the element color at pos
func (p *PersistentElements) At(pos Position) (color.RGBA, bool) {
	c, ok := p.elements[pos]
	return c, ok
}

// List flattens the index into a slice ordered by row then column
func (p *PersistentElements) List() []Element {
	list := make([]Element, 0, len(p.elements))
	for pos, c := range p.elements {
		list = append(list, Element{pos, c})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Y != list[j].Y {
			return list[i].Y < list[j].Y
		}
		return list[i].X < list[j].X
	})
	return list
}
