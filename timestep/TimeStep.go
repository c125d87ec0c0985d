// Package timestep implements timesteps of the agent-environment
// interaction
package timestep

import (
	"fmt"

	"github.com/google/uuid"

	env "github.com/samuelfneumann/gridagents/environment"
)

// StepType denotes the type of step that a TimeStep can be: a middle
// step, the last step of an episode, or the marker of an episode that
// was abandoned before it finished
type StepType int

const (
	Mid StepType = iota
	Last
	Aborted
)

func (s StepType) String() string {
	switch s {
	case Last:
		return "Last"
	case Aborted:
		return "Aborted"
	}
	return "Mid"
}

// TimeStep packages together a single step of a single agent
type TimeStep struct {
	StepType
	Agent    uuid.UUID
	Position env.Position // position the agent moved to
	Action   env.Action
	Reward   float64
	Number   int // step number within the agent's episode, starting at 1
	Total    int // step number within the experiment, starting at 1
}

// New returns a TimeStep for agent from a completed transition
func New(agent uuid.UUID, t env.Transition, number, total int) TimeStep {
	stepType := Mid
	if t.Done {
		stepType = Last
	}

	return TimeStep{
		StepType: stepType,
		Agent:    agent,
		Position: t.NextPosition,
		Action:   t.Action,
		Reward:   t.Reward,
		Number:   number,
		Total:    total,
	}
}

// NewAborted returns a TimeStep which closes an episode of agent that
// was abandoned at position after number completed steps. It carries
// no action or reward.
func NewAborted(agent uuid.UUID, position env.Position, number,
	total int) TimeStep {
	return TimeStep{
		StepType: Aborted,
		Agent:    agent,
		Position: position,
		Number:   number,
		Total:    total,
	}
}

// Aborted returns whether a TimeStep marks an abandoned episode
func (t TimeStep) Aborted() bool {
	return t.StepType == Aborted
}

// Last returns whether a TimeStep is the last step of an episode
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Agent: %v  |  Action: %v  |  " +
		"Reward: %.2f  |  Step Number: %v"

	return fmt.Sprintf(str, t.StepType, t.Agent, t.Action, t.Reward,
		t.Number)
}
