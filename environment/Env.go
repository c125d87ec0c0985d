package environment

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Env is a grid environment. It owns the Grid, the fixed action set,
// the index of persistent elements and a small data store which holds
// environment constants such as reward magnitudes.
//
// An Env does not track where agents are. The caller of Step owns each
// agent's position and must use the position returned by Step from then
// on.
type Env struct {
	grid               *Grid
	actions            []Action
	persistentElements *PersistentElements
	data               map[uint32]Value

	rng       *rand.Rand
	observers []func(Transition)
}

// Option configures an Env
type Option func(*Env)

// WithSeed seeds the random number generator used by RandomPosition
func WithSeed(seed uint64) Option {
	return func(e *Env) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns a new Env. All maps and slices are copied so that the Env
// does not alias any of its arguments.
func New(start, end Position, size Size,
	persistentElements map[Position]color.RGBA, actions []Action,
	data map[uint32]Value, opts ...Option) *Env {
	index := NewPersistentElements(persistentElements)

	store := make(map[uint32]Value, len(data))
	for k, v := range data {
		store[k] = v
	}

	e := &Env{
		grid:               NewGrid(start, end, size, index.List()),
		actions:            append([]Action(nil), actions...),
		persistentElements: index,
		data:               store,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return e
}

// Width returns the number of columns in the grid
func (e *Env) Width() int {
	return e.grid.size.Width
}

// Height returns the number of rows in the grid
func (e *Env) Height() int {
	return e.grid.size.Height
}

// Size returns the size of the grid
func (e *Env) Size() Size {
	return e.grid.Size()
}

// Start returns the start cell
func (e *Env) Start() Position {
	return e.grid.Start()
}

// End returns the end cell
func (e *Env) End() Position {
	return e.grid.End()
}

// Actions returns a copy of the action set
func (e *Env) Actions() []Action {
	return append([]Action(nil), e.actions...)
}

// Data returns the value stored at key
func (e *Env) Data(key uint32) (Value, bool) {
	v, ok := e.data[key]
	return v, ok
}

// Grid returns the Env's grid
func (e *Env) Grid() *Grid {
	return e.grid
}

// ValidPosition returns whether p lies within the grid. A grid with no
// rows or no columns has no valid positions.
func (e *Env) ValidPosition(p Position) bool {
	return e.grid.size.Contains(p)
}

// Index returns the row-major index of p in the grid
func (e *Env) Index(p Position) int {
	return p.index(e.grid.size.Width)
}

// Observe registers a function that is called with each transition
// completed by Step or CheckedStep
func (e *Env) Observe(f func(Transition)) {
	e.observers = append(e.observers, f)
}

// Step runs a single step of agent at position and returns the agent's
// new position and whether its episode is over.
//
// The returned position is computed by the agent and is not checked
// against the grid bounds; use CheckedStep to have it checked.
func (e *Env) Step(position Position, agent Agent) (Position, bool) {
	t := e.step(position, agent)
	e.notify(t)
	return t.NextPosition, t.Done
}

// CheckedStep is Step followed by a bounds check of the position the
// agent moved to. If the position is out of bounds, the agent has still
// learned from and committed the transition, but observers are not
// notified and an error wrapping ErrInvalidPosition is returned.
func (e *Env) CheckedStep(position Position, agent Agent) (Position, bool,
	error) {
	t := e.step(position, agent)
	if !e.ValidPosition(t.NextPosition) {
		return t.NextPosition, t.Done, fmt.Errorf("checkedStep: agent "+
			"moved from %v to %v: %w", position, t.NextPosition,
			ErrInvalidPosition)
	}

	e.notify(t)
	return t.NextPosition, t.Done, nil
}

func (e *Env) step(position Position, agent Agent) Transition {
	if l, ok := agent.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	action := agent.ChooseAction(agent.State(), e.actions)

	next, nextState, reward, done := agent.Step(e, position, agent.State(),
		action)

	// The update works on a snapshot so that it never sees the state
	// that is about to be committed
	state := agent.State().Clone()
	agent.Update(state, action, reward, nextState, e.Actions())

	agent.UpdateState(nextState)

	return Transition{
		Position:     position,
		Action:       action,
		Reward:       reward,
		NextPosition: next,
		Done:         done,
	}
}

func (e *Env) notify(t Transition) {
	for _, observer := range e.observers {
		observer(t)
	}
}

// RandomPosition returns a position sampled uniformly from the grid. It
// panics if the grid has no cells.
func (e *Env) RandomPosition() Position {
	if e.grid.size.Cells() == 0 {
		panic(fmt.Sprintf("randomPosition: grid of size (%d, %d) has no "+
			"cells", e.grid.size.Width, e.grid.size.Height))
	}
	return Position{
		X: e.rng.Intn(e.grid.size.Width),
		Y: e.rng.Intn(e.grid.size.Height),
	}
}

// PersistentElement returns the element at p
func (e *Env) PersistentElement(p Position) (color.RGBA, bool) {
	return e.persistentElements.At(p)
}

// HasPersistentElement returns whether there is an element at p
func (e *Env) HasPersistentElement(p Position) bool {
	return e.persistentElements.Contains(p)
}

// PersistentElements returns the elements ordered by row then column
func (e *Env) PersistentElements() []Element {
	return e.persistentElements.List()
}

// InsertPersistentElement places an element at p, replacing any
// element already there. The position is not bounds checked.
func (e *Env) InsertPersistentElement(p Position, c color.RGBA) {
	e.persistentElements.Insert(p, c)
	e.syncGrid()
}

// PlacePersistentElement is InsertPersistentElement for positions that
// must lie within the grid
func (e *Env) PlacePersistentElement(p Position, c color.RGBA) error {
	if !e.ValidPosition(p) {
		return fmt.Errorf("placePersistentElement: cannot place element "+
			"at %v: %w", p, ErrInvalidPosition)
	}
	e.InsertPersistentElement(p, c)
	return nil
}

// RemovePersistentElement removes and returns the element at p. Removing
// from an empty cell changes nothing.
func (e *Env) RemovePersistentElement(p Position) (color.RGBA, bool) {
	c, ok := e.persistentElements.Remove(p)
	if ok {
		e.syncGrid()
	}
	return c, ok
}

// MovePersistentElement moves the element at current to next,
// overwriting anything at next. Moving from an empty cell changes
// nothing.
func (e *Env) MovePersistentElement(current, next Position) {
	if e.persistentElements.Move(current, next) {
		e.syncGrid()
	}
}

// syncGrid rebuilds the grid's copy of the persistent elements from the
// full index
func (e *Env) syncGrid() {
	e.grid.UpdatePersistentElements(e.persistentElements.List())
}

// DisplayGrid draws the grid and the argument agents with r
func (e *Env) DisplayGrid(r Renderer, gridColor color.RGBA,
	agents []Element) error {
	return e.grid.Display(r, gridColor, agents)
}

func (e *Env) String() string {
	return fmt.Sprintf("Env | %v  |  Actions: %v", e.grid, e.actions)
}
