package experiment

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/google/uuid"

	env "github.com/samuelfneumann/gridagents/environment"
	"github.com/samuelfneumann/gridagents/experiment/checkpointer"
	"github.com/samuelfneumann/gridagents/experiment/trackers"
	ts "github.com/samuelfneumann/gridagents/timestep"
)

// member is an agent taking part in an Online experiment
type member struct {
	id       uuid.UUID
	agent    env.Agent
	position env.Position
	color    color.RGBA
	steps    int // steps taken in the current episode
	episodes int // completed episodes
}

// Online is an Experiment that runs agents online only. It is the
// scheduler of an Env: it owns each agent and its authoritative
// position, steps the agents one after another in the order they were
// added and starts new episodes for agents whose episodes are done.
type Online struct {
	env     *env.Env
	starter env.Starter

	members  []*member
	current  *member
	maxSteps uint
	ticks    uint
	total    int
	last     ts.TimeStep

	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer

	renderer  env.Renderer
	gridColor color.RGBA
}

// NewOnline creates and returns a new online experiment on the Env e.
// Agents start their episodes at positions sampled from starter. The
// maxSteps parameter determines how many ticks the experiment is run
// for; on each tick every agent takes one step.
func NewOnline(e *env.Env, starter env.Starter, maxSteps uint,
	t []trackers.Tracker, c []checkpointer.Checkpointer) *Online {
	o := &Online{
		env:           e,
		starter:       starter,
		maxSteps:      maxSteps,
		trackers:      t,
		checkpointers: c,
	}
	e.Observe(o.observe)

	return o
}

// Add adds an agent to the experiment and returns its ID. Agents are
// drawn with color c.
func (o *Online) Add(a env.Agent, c color.RGBA) uuid.UUID {
	m := &member{id: uuid.New(), agent: a, color: c}
	o.start(m)
	o.members = append(o.members, m)

	return m.id
}

// start begins a new episode for m
func (o *Online) start(m *member) {
	m.position = o.starter.Start()
	m.steps = 0
	if r, ok := m.agent.(env.Resetter); ok {
		r.Reset(o.env, m.position)
	}
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// AddCheckpointer adds a Checkpointer which is called after each valid
// step of any agent
func (o *Online) AddCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// SetRenderer draws the grid and agents with r after every tick
func (o *Online) SetRenderer(r env.Renderer, gridColor color.RGBA) {
	o.renderer = r
	o.gridColor = gridColor
}

// Position returns the current position of the agent with ID id
func (o *Online) Position(id uuid.UUID) (env.Position, bool) {
	for _, m := range o.members {
		if m.id == id {
			return m.position, true
		}
	}
	return env.Position{}, false
}

// Episodes returns the number of episodes completed by the agent with
// ID id
func (o *Online) Episodes(id uuid.UUID) int {
	for _, m := range o.members {
		if m.id == id {
			return m.episodes
		}
	}
	return 0
}

// Tick steps every agent once, in the order they were added
func (o *Online) Tick() error {
	for _, m := range o.members {
		if err := o.stepMember(m); err != nil {
			return err
		}
	}
	o.ticks++

	if o.renderer != nil {
		if err := o.env.DisplayGrid(o.renderer, o.gridColor,
			o.draws()); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
	}
	return nil
}

func (o *Online) stepMember(m *member) error {
	o.current = m
	defer func() { o.current = nil }()

	next, done, err := o.env.CheckedStep(m.position, m.agent)
	if errors.Is(err, env.ErrInvalidPosition) {
		// The agent left the grid, so its episode cannot continue
		log.Printf("agent %v: %v, restarting episode", m.id, err)
		o.abort(m)
		o.start(m)
		return nil
	} else if err != nil {
		return fmt.Errorf("stepMember: %w", err)
	}

	m.position = next
	if done {
		m.episodes++
		o.start(m)
	}

	return o.checkpoint()
}

// observe receives every transition completed in the Env
func (o *Online) observe(t env.Transition) {
	m := o.current
	if m == nil {
		return
	}

	m.steps++
	o.total++
	step := ts.New(m.id, t, m.steps, o.total)
	o.last = step

	for _, tracker := range o.trackers {
		tracker.Track(step)
	}
}

// abort closes the current episode of m for the trackers without
// completing it
func (o *Online) abort(m *member) {
	if m.steps == 0 {
		return
	}

	step := ts.NewAborted(m.id, m.position, m.steps, o.total)
	for _, tracker := range o.trackers {
		tracker.Track(step)
	}
}

func (o *Online) checkpoint() error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(o.last); err != nil {
			return fmt.Errorf("checkpoint: %w", err)
		}
	}
	return nil
}

func (o *Online) draws() []env.Element {
	draws := make([]env.Element, len(o.members))
	for i, m := range o.members {
		draws[i] = env.Element{Position: m.position, Color: m.color}
	}
	return draws
}

// RunEpisode runs ticks until the first agent added to the experiment
// completes an episode or the tick limit is reached. It returns whether
// the tick limit has been reached.
func (o *Online) RunEpisode() (bool, error) {
	if len(o.members) == 0 {
		return true, fmt.Errorf("runEpisode: no agents in experiment")
	}

	first := o.members[0]
	episodes := first.episodes
	for first.episodes == episodes && o.ticks < o.maxSteps {
		if err := o.Tick(); err != nil {
			return false, err
		}
	}

	return o.ticks >= o.maxSteps, nil
}

// Run runs the entire experiment for all ticks
func (o *Online) Run() error {
	for o.ticks < o.maxSteps {
		if err := o.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Ticks returns the number of ticks run so far
func (o *Online) Ticks() uint {
	return o.ticks
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}
