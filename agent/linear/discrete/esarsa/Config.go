package esarsa

import (
	"fmt"

	"github.com/samuelfneumann/gridagents/agent"
	env "github.com/samuelfneumann/gridagents/environment"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedyESarsaLinear, Config{})
}

// Config represents a configuration for the ESarsa agent.
type Config struct {
	BehaviourE    float64 // epislon for behaviour policy
	TargetE       float64 // epsilon for target policy
	LearningRate  float64
	Discount      float64
	EpisodeCutoff int // steps before an episode is cut off, 0 for none
}

// NewTypedConfig returns a new Config as an agent.TypedConfig so that
// it can easily be JSON serialized/deserialized without knowing the
// underlying concrete type.
func NewTypedConfig(behaviourE, targetE, learningRate, discount float64,
	cutoff int) agent.TypedConfig {
	return agent.NewTypedConfig(Config{
		BehaviourE:    behaviourE,
		TargetE:       targetE,
		LearningRate:  learningRate,
		Discount:      discount,
		EpisodeCutoff: cutoff,
	})
}

// CreateAgent creates the agent from the Config. Agent weights are
// always initialized to zero.
func (c Config) CreateAgent(e *env.Env, seed uint64) (agent.Agent, error) {
	s, err := New(e, c, seed)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*ESarsa)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.BehaviourE < 0 || c.BehaviourE > 1 {
		return fmt.Errorf("validate: behaviour epsilon must be in [0, 1]")
	}
	if c.TargetE < 0 || c.TargetE > 1 {
		return fmt.Errorf("validate: target epsilon must be in [0, 1]")
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
	return agent.EGreedyESarsaLinear
}
