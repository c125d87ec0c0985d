package trackers

import (
	"fmt"

	"github.com/google/uuid"

	ts "github.com/samuelfneumann/gridagents/timestep"
)

// Return tracks and saves the episodic return of each agent in an
// experiment. When an agent completes a step, this Tracker will
// extract the reward and accumulate the return for the agent's current
// episode.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode of an agent does not finish, that episode's
// return will not be saved.
type Return struct {
	lastTimeStep   map[uuid.UUID]int
	currentReturn  map[uuid.UUID]float64
	episodeReturns map[uuid.UUID][]float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which saves its
// data to filename
func NewReturn(filename string) *Return {
	return &Return{
		lastTimeStep:   make(map[uuid.UUID]int),
		currentReturn:  make(map[uuid.UUID]float64),
		episodeReturns: make(map[uuid.UUID][]float64),
		filename:       filename,
	}
}

// Track tracks the reward seen on a timestep. When the timestep is the
// last of an episode, the accumulated return is cached and a new
// episode is started for the agent.
//
// An aborted timestep discards the return of the agent's current
// episode.
//
// Track panics if it is called for non-sequential timesteps of the same
// agent
func (r *Return) Track(step ts.TimeStep) {
	if step.Aborted() {
		delete(r.currentReturn, step.Agent)
		delete(r.lastTimeStep, step.Agent)
		return
	}

	// Ensure that Track is called on sequential timesteps
	if last := r.lastTimeStep[step.Agent]; last+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked for agent "+
			"%v are not sequential: timestep %v --> timestep %v", step.Agent,
			last, step.Number)
		panic(msg)
	}

	r.currentReturn[step.Agent] += step.Reward
	r.lastTimeStep[step.Agent] = step.Number

	if step.Last() {
		// Episode has ended, save the return and begin tracking the
		// return for a new episode
		r.episodeReturns[step.Agent] = append(r.episodeReturns[step.Agent],
			r.currentReturn[step.Agent])

		r.currentReturn[step.Agent] = 0.0
		r.lastTimeStep[step.Agent] = 0
	}
}

// Returns returns the completed episodic returns of agent
func (r *Return) Returns(agent uuid.UUID) []float64 {
	return append([]float64(nil), r.episodeReturns[agent]...)
}

// Save saves the data tracked by the Return Tracker to disk. Returns
// are keyed by agent ID.
func (r *Return) Save() error {
	data := make(map[string][]float64, len(r.episodeReturns))
	for id, returns := range r.episodeReturns {
		data[id.String()] = returns
	}
	return save(r.filename, data)
}

// LoadReturns loads the returns saved by a Return Tracker
func LoadReturns(filename string) (map[string][]float64, error) {
	var data map[string][]float64
	if err := load(filename, &data); err != nil {
		return nil, err
	}
	return data, nil
}
