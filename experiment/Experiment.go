// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/samuelfneumann/gridagents/agent"
	"github.com/samuelfneumann/gridagents/environment/envconfig"
	"github.com/samuelfneumann/gridagents/experiment/checkpointer"
	"github.com/samuelfneumann/gridagents/experiment/trackers"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each TimeStep generated in the environment to their
// Trackers, which cache the data in RAM. The Save() method then saves
// all cached data to disk, usually after the experiment has been run.
// The Run() method runs the experiment until the tick limit is
// reached, and the RunEpisode() method runs until the first agent
// finishes an episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the tick limit was hit

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Palette holds the colors agents are drawn with, in the order they
// are added to an experiment
var Palette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 128, G: 0, B: 128, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

// Config represents a configuration of an experiment.
type Config struct {
	Type
	MaxSteps  uint
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf []agent.TypedConfig
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return fmt.Errorf("validate: no such experiment type %q", c.Type)
	}
	if len(c.AgentConf) == 0 {
		return fmt.Errorf("validate: at least one agent is required")
	}
	if err := c.EnvConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	for i, conf := range c.AgentConf {
		if conf.Config == nil {
			return fmt.Errorf("validate: agent %d has no config", i)
		}
		if err := conf.Validate(); err != nil {
			return fmt.Errorf("validate: agent %d: %w", i, err)
		}
	}
	return nil
}

// CreateExp creates the experiment described by the Config along with
// each of its agents, in the order they are configured. Agent i is
// seeded with Seed+i.
func (c Config) CreateExp(t []trackers.Tracker,
	check []checkpointer.Checkpointer) (*Online, []agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("createExp: %w", err)
	}

	e, starter, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create "+
			"environment: %w", err)
	}

	exp := NewOnline(e, starter, c.MaxSteps, t, check)
	agents := make([]agent.Agent, len(c.AgentConf))
	for i, conf := range c.AgentConf {
		a, err := conf.CreateAgent(e, c.Seed+uint64(i))
		if err != nil {
			return nil, nil, fmt.Errorf("createExp: could not create "+
				"agent %d: %w", i, err)
		}
		agents[i] = a
		exp.Add(a, Palette[i%len(Palette)])
	}

	return exp, agents, nil
}

// Load loads an experiment Config from a JSON file
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %w",
			err)
	}
	return c, nil
}
