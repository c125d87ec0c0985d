package gridworld

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/samuelfneumann/gridagents/environment"
)

// Keys into the Env data store holding reward magnitudes
const (
	StepRewardKey uint32 = iota
	GoalRewardKey
	WallRewardKey
)

// Default rewards used when an Env has no reward stored under a key
const (
	DefaultStepReward float64 = -1.0
	DefaultGoalReward float64 = 0.0
	DefaultWallReward float64 = -1.0
)

// Colors of the persistent elements understood by the Goal task
var (
	ObstacleColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	GoalColor     = color.RGBA{R: 40, G: 180, B: 80, A: 255}
)

// Goal represents the task of reaching a goal cell in a grid. The goal
// cells are the Env's end cell and every persistent element colored
// GoalColor. Every other persistent element blocks movement.
//
// Rewards are read from the Env data store so that the same task can
// be used on differently configured Envs.
type Goal struct{}

// Transition returns the position reached by taking action at p, the
// reward for the move and whether a goal was reached. Moves that would
// leave the grid or enter a blocked cell leave the agent where it is.
func (g Goal) Transition(e *env.Env, p env.Position,
	action env.Action) (env.Position, float64, bool) {
	next := p.Add(action.Delta())

	if !e.ValidPosition(next) || g.Blocked(e, next) {
		return p, Reward(e, WallRewardKey), false
	}

	if g.AtGoal(e, next) {
		return next, Reward(e, GoalRewardKey), true
	}
	return next, Reward(e, StepRewardKey), false
}

// Blocked returns whether p holds an element that cannot be entered
func (g Goal) Blocked(e *env.Env, p env.Position) bool {
	c, ok := e.PersistentElement(p)
	return ok && c != GoalColor
}

// AtGoal returns whether p is a goal cell
func (g Goal) AtGoal(e *env.Env, p env.Position) bool {
	if p == e.End() {
		return true
	}
	c, ok := e.PersistentElement(p)
	return ok && c == GoalColor
}

// RewardRange returns the minimum and maximum reward attainable
func (g Goal) RewardRange(e *env.Env) r1.Interval {
	rewards := []float64{
		Reward(e, StepRewardKey),
		Reward(e, GoalRewardKey),
		Reward(e, WallRewardKey),
	}
	return r1.Interval{Min: floats.Min(rewards), Max: floats.Max(rewards)}
}

// Reward returns the reward stored under key in the Env data store, or
// the default reward for key if none is stored
func Reward(e *env.Env, key uint32) float64 {
	if v, ok := e.Data(key); ok {
		if r, ok := v.(float64); ok {
			return r
		}
	}

	switch key {
	case GoalRewardKey:
		return DefaultGoalReward
	case WallRewardKey:
		return DefaultWallReward
	default:
		return DefaultStepReward
	}
}

// Rewards holds the reward magnitudes of a Goal task
type Rewards struct {
	Step float64 `json:"step"`
	Goal float64 `json:"goal"`
	Wall float64 `json:"wall"`
}

// DefaultRewards returns the default task rewards
func DefaultRewards() Rewards {
	return Rewards{
		Step: DefaultStepReward,
		Goal: DefaultGoalReward,
		Wall: DefaultWallReward,
	}
}

// Data returns an Env data store holding the rewards
func (r Rewards) Data() map[uint32]env.Value {
	return map[uint32]env.Value{
		StepRewardKey: r.Step,
		GoalRewardKey: r.Goal,
		WallRewardKey: r.Wall,
	}
}

func (r Rewards) String() string {
	return fmt.Sprintf("Rewards | Step: %.2f  |  Goal: %.2f  |  Wall: %.2f",
		r.Step, r.Goal, r.Wall)
}
