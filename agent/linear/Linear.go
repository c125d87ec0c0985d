// Package linear implements the parts shared by agents which use linear
// function approximation over one-hot cell features: their states, the
// way they move through a gridworld and the checkpointing of their
// weights.
package linear

import (
	"encoding/gob"
	"fmt"
	"os"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gridagents/agent"
	env "github.com/samuelfneumann/gridagents/environment"
	"github.com/samuelfneumann/gridagents/environment/gridworld"
)

// Observation is the state of a linear agent: its cell and the one-hot
// encoding of that cell
type Observation struct {
	Position env.Position
	Features *mat.VecDense
}

// NewObservation returns the observation of cell p in e. Positions
// outside the grid have no active feature.
func NewObservation(e *env.Env, p env.Position) Observation {
	features := mat.NewVecDense(e.Size().Cells(), nil)
	if e.ValidPosition(p) {
		features.SetVec(e.Index(p), 1.0)
	}
	return Observation{Position: p, Features: features}
}

// Clone implements the environment.State interface
func (o Observation) Clone() env.State {
	if o.Features == nil {
		return Observation{Position: o.Position}
	}
	return Observation{
		Position: o.Position,
		Features: mat.VecDenseCopyOf(o.Features),
	}
}

// Learner implements a learning algorithm that defines how weights are
// updated from a single transition
type Learner interface {
	Learn(state mat.Vector, action int, reward float64, nextState mat.Vector)
}

// Base implements every operation of an agent except learning, which
// it delegates to a Learner. The behaviour Policy and the Learner
// should share weights.
type Base struct {
	sync.Mutex

	behaviour agent.Policy
	learner   Learner
	weights   *mat.Dense
	task      gridworld.Goal
	limit     env.StepLimit

	state Observation
	steps int
}

// NewBase returns a new Base starting at the start cell of e. Episodes
// are cut off after cutoff steps, or never if cutoff <= 0.
func NewBase(e *env.Env, behaviour agent.Policy, learner Learner,
	weights *mat.Dense, cutoff int) *Base {
	return &Base{
		behaviour: behaviour,
		learner:   learner,
		weights:   weights,
		limit:     env.NewStepLimit(cutoff),
		state:     NewObservation(e, e.Start()),
	}
}

// State returns the current observation of the agent
func (b *Base) State() env.State {
	return b.state
}

// ChooseAction selects an action with the behaviour policy
func (b *Base) ChooseAction(state env.State, actions []env.Action) env.Action {
	obs := state.(Observation)
	a := b.behaviour.SelectAction(obs.Features)

	if a >= len(actions) {
		panic(fmt.Sprintf("chooseAction: policy selected action %d of %d",
			a, len(actions)))
	}
	return actions[a]
}

// Step moves through the gridworld task. The episode is done when a
// goal is reached or the step limit is hit.
func (b *Base) Step(e *env.Env, p env.Position, _ env.State,
	action env.Action) (env.Position, env.State, float64, bool) {
	next, reward, done := b.task.Transition(e, p, action)

	done = done || b.limit.End(b.steps+1)
	return next, NewObservation(e, next), reward, done
}

// Update updates the weights with the Learner
func (b *Base) Update(state env.State, action env.Action, reward float64,
	nextState env.State, actions []env.Action) {
	a := env.IndexOf(actions, action)
	if a < 0 {
		fmt.Fprintf(os.Stderr, "Warning: action %v is not in the action "+
			"set %v, skipping update", action, actions)
		return
	}

	b.learner.Learn(state.(Observation).Features, a, reward,
		nextState.(Observation).Features)
}

// UpdateState commits the agent's next observation
func (b *Base) UpdateState(next env.State) {
	b.state = next.(Observation)
	b.steps++
}

// Reset starts a new episode at p
func (b *Base) Reset(e *env.Env, p env.Position) {
	b.state = NewObservation(e, p)
	b.steps = 0
}

// EpisodeSteps returns the number of steps taken in the current episode
func (b *Base) EpisodeSteps() int {
	return b.steps
}

// Weights returns the weights shared by the policy and learner
func (b *Base) Weights() *mat.Dense {
	return b.weights
}

// Save saves the agent's weights to filename
func (b *Base) Save(filename string) (err error) {
	data, err := b.weights.MarshalBinary()
	if err != nil {
		return fmt.Errorf("save: could not marshal weights: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save: could not close save file: %w", cerr)
		}
	}()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("save: could not encode weights: %w", err)
	}
	return nil
}

// Load restores weights saved by Save. The saved weights must have the
// same shape as the agent's weights.
func (b *Base) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load: could not open file: %w", err)
	}
	defer file.Close()

	var data []byte
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return fmt.Errorf("load: could not decode weights: %w", err)
	}

	var weights mat.Dense
	if err := weights.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("load: could not unmarshal weights: %w", err)
	}

	r, c := b.weights.Dims()
	if wr, wc := weights.Dims(); wr != r || wc != c {
		return fmt.Errorf("load: weights have shape (%d, %d), want (%d, %d)",
			wr, wc, r, c)
	}

	// Copy so that the policy and learner keep sharing the weights
	b.weights.Copy(&weights)
	return nil
}
