package gridworld

import (
	"fmt"

	env "github.com/samuelfneumann/gridagents/environment"
)

// NewSingleStart returns a Starter which always starts at the Env's
// start cell
func NewSingleStart(e *env.Env) env.Starter {
	return singleStart{e.Start()}
}

type singleStart struct {
	position env.Position
}

func (s singleStart) Start() env.Position {
	return s.position
}

// freeCellStarter resamples random positions of the Env until one is
// free
type freeCellStarter struct {
	env  *env.Env
	task Goal
}

// NewFreeCellStarter returns a Starter which samples uniformly from
// the cells of e that are neither blocked nor goals. Cells are drawn
// with e.RandomPosition, so the Starter is seeded by the Env.
func NewFreeCellStarter(e *env.Env) (env.Starter, error) {
	s := freeCellStarter{env: e}

	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			if s.free(env.Position{X: x, Y: y}) {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("newFreeCellStarter: no free cells to start in")
}

func (s freeCellStarter) free(p env.Position) bool {
	return !s.task.Blocked(s.env, p) && !s.task.AtGoal(s.env, p)
}

// Start returns a free starting position
func (s freeCellStarter) Start() env.Position {
	for {
		if p := s.env.RandomPosition(); s.free(p) {
			return p
		}
	}
}
