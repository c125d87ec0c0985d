// Package agent defines the agents that can be configured, created and
// checkpointed by experiments
package agent

import (
	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/gridagents/environment"
)

// Agent is an environment.Agent which can begin new episodes and whose
// learned parameters can be saved to and restored from disk.
//
// An Agent is usually composed of a Policy, which chooses actions, and
// a learner which updates the weights the Policy uses.
type Agent interface {
	env.Resetter

	// Save saves the learned parameters of the agent to filename
	Save(filename string) error

	// Load restores learned parameters saved by Save
	Load(filename string) error
}

// Policy represents a policy that an agent can have.
//
// Policies select the index of an action given the features of a state.
// For a given agent, the Policy and learner should have pointers to the
// same weights so that any changes the learner makes to the weights are
// reflected in the actions the Policy chooses.
type Policy interface {
	SelectAction(features mat.Vector) int
	Probabilities(features mat.Vector) []float64
}
