// Package envconfig provides configuration structs for configuring
// gridworld environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/samuelfneumann/gridagents/environment"
	"github.com/samuelfneumann/gridagents/environment/gridworld"
)

// StartName names the ways agents can be placed at the start of an
// episode
type StartName string

const (
	// FixedStart starts every episode at the configured start cell
	FixedStart StartName = "Fixed"

	// RandomStart starts episodes at a uniformly random free cell
	RandomStart StartName = "Random"
)

// Config implements a specific configuration of a gridworld
type Config struct {
	Size      env.Size          `json:"size"`
	Start     env.Position      `json:"start"`
	End       env.Position      `json:"end"`
	Obstacles []env.Position    `json:"obstacles,omitempty"`
	Goals     []env.Position    `json:"goals,omitempty"`
	Rewards   gridworld.Rewards `json:"rewards"`
	Starter   StartName         `json:"starter,omitempty"`
}

// NewConfig returns a new environment Config with default rewards and
// fixed starts
func NewConfig(size env.Size, start, end env.Position,
	obstacles []env.Position) Config {
	return Config{
		Size:      size,
		Start:     start,
		End:       end,
		Obstacles: obstacles,
		Rewards:   gridworld.DefaultRewards(),
		Starter:   FixedStart,
	}
}

func (c Config) layout() gridworld.Layout {
	return gridworld.Layout{
		Size:      c.Size,
		Start:     c.Start,
		End:       c.End,
		Obstacles: c.Obstacles,
		Goals:     c.Goals,
	}
}

// Validate returns an error describing why the configuration is
// invalid, or nil if it is valid
func (c Config) Validate() error {
	if err := c.layout().Validate(); err != nil {
		return err
	}

	switch c.Starter {
	case "", FixedStart, RandomStart:
	default:
		return fmt.Errorf("validate: no such starter %q", c.Starter)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the Starter that places agents at the start of their episodes
func (c Config) Create(seed uint64) (*env.Env, env.Starter, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	e, err := gridworld.New(c.layout(), c.Rewards, env.WithSeed(seed))
	if err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	if c.Starter == RandomStart {
		s, err := gridworld.NewFreeCellStarter(e)
		if err != nil {
			return nil, nil, fmt.Errorf("create: %w", err)
		}
		return e, s, nil
	}
	return e, gridworld.NewSingleStart(e), nil
}

// Load reads a JSON encoded Config from filename
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %w", err)
	}
	return c, nil
}
