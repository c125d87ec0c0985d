// Package esarsa implements the Expected Sarsa algorithm
package esarsa

import (
	"fmt"

	"github.com/samuelfneumann/gridagents/agent/linear"
	"github.com/samuelfneumann/gridagents/agent/linear/discrete/policy"
	env "github.com/samuelfneumann/gridagents/environment"
)

// ESarsa implements the online Expected Sarsa algorithm with an
// ε-greedy behaviour policy and an ε-greedy target policy which share
// the same weights
type ESarsa struct {
	*linear.Base
	Target *policy.EGreedy
	seed   uint64
}

// New creates a new ESarsa agent for the environment e. Weights are
// initialized to zero.
func New(e *env.Env, c Config, seed uint64) (*ESarsa, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	features := e.Size().Cells()
	actions := len(e.Actions())

	// Get the behaviour policy
	behaviour, err := policy.NewEGreedy(c.BehaviourE, seed, features,
		actions)
	if err != nil {
		return nil, fmt.Errorf("new: invalid behaviour policy: %w", err)
	}

	// Get the target policy
	target, err := policy.NewEGreedy(c.TargetE, seed, features, actions)
	if err != nil {
		return nil, fmt.Errorf("new: invalid target policy: %w", err)
	}

	// Ensure both policies and learner reference the same weights
	weights := behaviour.Weights()
	if err := target.SetWeights(weights); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	learner := NewESarsaLearner(target, c.LearningRate, c.Discount)
	base := linear.NewBase(e, behaviour, learner, weights[policy.WeightsKey],
		c.EpisodeCutoff)

	return &ESarsa{base, target, seed}, nil
}
