package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gridagents/agent"
	env "github.com/samuelfneumann/gridagents/environment"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedyQLearningLinear, Config{})
}

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon       float64 // epislon for behaviour policy
	LearningRate  float64
	Discount      float64
	EpisodeCutoff int // steps before an episode is cut off, 0 for none
}

// NewTypedConfig returns a new Config as an agent.TypedConfig so that
// it can easily be JSON serialized/deserialized without knowing the
// underlying concrete type.
func NewTypedConfig(e, learningRate, discount float64,
	cutoff int) agent.TypedConfig {
	return agent.NewTypedConfig(Config{
		Epsilon:       e,
		LearningRate:  learningRate,
		Discount:      discount,
		EpisodeCutoff: cutoff,
	})
}

// CreateAgent creates the agent from the Config. Agent weights are
// always initialized to zero.
func (c Config) CreateAgent(e *env.Env, seed uint64) (agent.Agent, error) {
	q, err := New(e, c, seed)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1]")
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("validate: learning rate must be positive")
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1]")
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearningLinear
}
