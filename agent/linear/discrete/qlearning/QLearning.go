// Package qlearning implements the Q-Learning algorithm.
//
// The Q-Learning algorithm is a special case of the Expected Sarsa
// algorithm. This package implements the same functionality as the
// esarsa package, but with some minor performance improvements due to
// the nature of the Q-Learning target policy being known before-hand.
package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gridagents/agent/linear"
	"github.com/samuelfneumann/gridagents/agent/linear/discrete/policy"
	env "github.com/samuelfneumann/gridagents/environment"
)

// QLearning implements the Q-Learning algorithm. The behaviour policy
// is ε-greedy and the target policy is greedy with respect to the same
// weights.
type QLearning struct {
	*linear.Base
	target *policy.EGreedy
	seed   uint64
}

// New creates a new QLearning agent for the environment e. Weights are
// initialized to zero.
func New(e *env.Env, c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	features := e.Size().Cells()
	actions := len(e.Actions())

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed, features, actions)
	if err != nil {
		return nil, fmt.Errorf("new: invalid behaviour policy: %w", err)
	}

	target, err := policy.NewGreedy(seed, features, actions)
	if err != nil {
		return nil, fmt.Errorf("new: invalid target policy: %w", err)
	}

	// Ensure both policies and learner reference the same weights
	weights := behaviour.Weights()
	if err := target.SetWeights(weights); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	learner := NewQLearner(weights[policy.WeightsKey], c.LearningRate,
		c.Discount)
	base := linear.NewBase(e, behaviour, learner, weights[policy.WeightsKey],
		c.EpisodeCutoff)

	return &QLearning{base, target, seed}, nil
}

// GreedyAction returns the action that the target policy takes in state
func (q *QLearning) GreedyAction(state env.State,
	actions []env.Action) env.Action {
	obs := state.(linear.Observation)
	return actions[q.target.SelectAction(obs.Features)]
}

// ActionValues returns the value of each action in state
func (q *QLearning) ActionValues(state env.State) *mat.VecDense {
	return q.target.ActionValues(state.(linear.Observation).Features)
}
