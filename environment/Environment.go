// Package environment implements a discrete grid environment in which
// agents move between integer cells. The Env orchestrates each agent
// step, while agents decide on actions, compute their own transitions
// and learn from the rewards they receive.
package environment

// Value is an opaque value stashed in an Env's data store, such as the
// magnitude of a reward
type Value interface{}

// State is an agent's perception of where it is and what it sees. A
// State belongs to its agent; the Env only ever passes it back to the
// agent that produced it.
type State interface {
	// Clone returns a deep copy of the State which does not alias the
	// original
	Clone() State
}

// Agent is any type that can act in an Env.
//
// For a single Env step the agent chooses an action, computes the
// transition caused by that action, learns from the transition and
// then commits its new state, strictly in that order.
type Agent interface {
	// State returns the current state of the agent
	State() State

	// ChooseAction selects one of actions in state
	ChooseAction(state State, actions []Action) Action

	// Step computes the transition of taking action in state at
	// position. The Env passes itself so that the agent can consult
	// bounds and persistent elements. Implementations should use
	// env.ValidPosition before moving.
	Step(env *Env, position Position, state State,
		action Action) (next Position, nextState State, reward float64,
		done bool)

	// Update is the learning hook. It must only change learned
	// parameters, never the agent's position or state.
	Update(state State, action Action, reward float64, nextState State,
		actions []Action)

	// UpdateState commits the agent's new state
	UpdateState(next State)
}

// Resetter is an Agent that can start a new episode at some position
type Resetter interface {
	Agent
	Reset(env *Env, position Position)
}

// Starter samples the positions at which agents start episodes
type Starter interface {
	Start() Position
}

// Transition describes one completed agent step
type Transition struct {
	Position     Position
	Action       Action
	Reward       float64
	NextPosition Position
	Done         bool
}
