// Package gridworld implements 2D gridworld tasks on top of the
// environment package: walls that block movement, goal cells that end
// episodes and rewards kept in the Env data store.
package gridworld

import (
	"fmt"
	"image/color"

	env "github.com/samuelfneumann/gridagents/environment"
)

// Layout describes the cells of a gridworld
type Layout struct {
	Size      env.Size
	Start     env.Position
	End       env.Position
	Obstacles []env.Position
	Goals     []env.Position
}

// Validate ensures that every cell of the layout lies within the grid
// and that the start and end cells are not blocked
func (l Layout) Validate() error {
	if l.Size.Cells() == 0 {
		return fmt.Errorf("validate: grid of size (%d, %d) has no cells",
			l.Size.Width, l.Size.Height)
	}

	if !l.Size.Contains(l.Start) {
		return fmt.Errorf("validate: start %v: %w", l.Start,
			env.ErrInvalidPosition)
	}
	if !l.Size.Contains(l.End) {
		return fmt.Errorf("validate: end %v: %w", l.End,
			env.ErrInvalidPosition)
	}

	for i, p := range l.Obstacles {
		if !l.Size.Contains(p) {
			return fmt.Errorf("validate: obstacle[%d] = %v: %w", i, p,
				env.ErrInvalidPosition)
		}
		if p == l.Start || p == l.End {
			return fmt.Errorf("validate: obstacle[%d] = %v covers the "+
				"start or end cell", i, p)
		}
	}

	for i, p := range l.Goals {
		if !l.Size.Contains(p) {
			return fmt.Errorf("validate: goal[%d] = %v: %w", i, p,
				env.ErrInvalidPosition)
		}
	}
	return nil
}

// PersistentElements returns the obstacles and goals of the layout as
// persistent elements. Goals win over obstacles at the same cell.
func (l Layout) PersistentElements() map[env.Position]color.RGBA {
	elements := make(map[env.Position]color.RGBA,
		len(l.Obstacles)+len(l.Goals))
	for _, p := range l.Obstacles {
		elements[p] = ObstacleColor
	}
	for _, p := range l.Goals {
		elements[p] = GoalColor
	}
	return elements
}

// New creates a new gridworld Env from a layout and rewards, using the
// four cardinal actions
func New(l Layout, r Rewards, opts ...env.Option) (*env.Env, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid layout: %w", err)
	}

	e := env.New(l.Start, l.End, l.Size, l.PersistentElements(),
		env.CardinalActions(), r.Data(), opts...)
	return e, nil
}
