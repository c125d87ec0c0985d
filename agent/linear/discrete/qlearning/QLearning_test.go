package qlearning

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gridagents/agent"
	"github.com/samuelfneumann/gridagents/agent/linear"
	env "github.com/samuelfneumann/gridagents/environment"
	"github.com/samuelfneumann/gridagents/environment/gridworld"
)

// newCorridor returns a 4x1 gridworld where the goal is at the right
func newCorridor(t testing.TB) *env.Env {
	l := gridworld.Layout{
		Size:  env.Size{Width: 4, Height: 1},
		Start: env.Position{X: 0, Y: 0},
		End:   env.Position{X: 3, Y: 0},
	}
	e, err := gridworld.New(l, gridworld.DefaultRewards(), env.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestQLearnerLearn(t *testing.T) {
	weights := mat.NewDense(2, 3, nil)
	weights.Set(1, 2, 4.0)
	q := NewQLearner(weights, 0.5, 0.9)

	state := mat.NewVecDense(3, []float64{1, 0, 0})
	next := mat.NewVecDense(3, []float64{0, 0, 1})
	q.Learn(state, 0, -1, next)

	// target = -1 + 0.9 * 4 = 2.6, estimate = 0
	if got := weights.At(0, 0); !scalar.EqualWithinAbs(got, 1.3, 1e-12) {
		t.Errorf("weight = %v, want 1.3", got)
	}
	if got := weights.At(1, 2); got != 4.0 {
		t.Errorf("untouched weight changed to %v", got)
	}
}

func TestQLearningLearnsCorridor(t *testing.T) {
	e := newCorridor(t)
	q, err := New(e, Config{
		Epsilon:       0.1,
		LearningRate:  0.5,
		Discount:      1.0,
		EpisodeCutoff: 100,
	}, 7)
	if err != nil {
		t.Fatal(err)
	}

	for episode := 0; episode < 200; episode++ {
		position := e.Start()
		q.Reset(e, position)

		done := false
		for !done {
			position, done = e.Step(position, q)
		}
	}

	actions := e.Actions()
	for x := 0; x < 3; x++ {
		obs := linear.NewObservation(e, env.Position{X: x, Y: 0})
		if a := q.GreedyAction(obs, actions); a != env.Right {
			t.Errorf("greedy action at x = %d is %v, want Right (values %v)",
				x, a, mat.Formatted(q.ActionValues(obs).T()))
		}
	}
}

func TestEpisodeCutoff(t *testing.T) {
	e := newCorridor(t)

	// Never move right by blocking the path with a wall
	e.InsertPersistentElement(env.Position{X: 1, Y: 0},
		gridworld.ObstacleColor)

	q, err := New(e, Config{Epsilon: 1, LearningRate: 0.1, Discount: 1,
		EpisodeCutoff: 5}, 3)
	if err != nil {
		t.Fatal(err)
	}

	position, done, steps := e.Start(), false, 0
	for !done {
		position, done = e.Step(position, q)
		steps++
	}
	if steps != 5 {
		t.Errorf("episode ended after %d steps, want 5", steps)
	}
	if q.EpisodeSteps() != 5 {
		t.Errorf("agent counted %d steps, want 5", q.EpisodeSteps())
	}
}

func TestSaveLoad(t *testing.T) {
	e := newCorridor(t)
	c := Config{Epsilon: 0.1, LearningRate: 0.5, Discount: 0.9}

	q, err := New(e, c, 1)
	if err != nil {
		t.Fatal(err)
	}
	q.Weights().Set(3, 2, 1.5)

	filename := filepath.Join(t.TempDir(), "weights.bin")
	if err := q.Save(filename); err != nil {
		t.Fatal(err)
	}

	loaded, err := New(e, c, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := loaded.Load(filename); err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(q.Weights(), loaded.Weights()) {
		t.Error("loaded weights differ from saved weights")
	}

	// The policy must still see the loaded weights
	obs := linear.NewObservation(e, env.Position{X: 2, Y: 0})
	if a := loaded.GreedyAction(obs, e.Actions()); a != env.Right {
		t.Errorf("greedy action after load = %v, want Right", a)
	}
}

func TestTypedConfig(t *testing.T) {
	data := []byte(`{"Type": "EGreedyQLearning-Linear", "Config": {
		"Epsilon": 0.2, "LearningRate": 0.1, "Discount": 0.95,
		"EpisodeCutoff": 50}}`)

	var typed agent.TypedConfig
	if err := json.Unmarshal(data, &typed); err != nil {
		t.Fatal(err)
	}

	c, ok := typed.Config.(Config)
	if !ok {
		t.Fatalf("config has type %T, want Config", typed.Config)
	}
	want := Config{Epsilon: 0.2, LearningRate: 0.1, Discount: 0.95,
		EpisodeCutoff: 50}
	if c != want {
		t.Errorf("config = %+v, want %+v", c, want)
	}

	a, err := typed.CreateAgent(newCorridor(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !c.ValidAgent(a) {
		t.Errorf("agent of type %T is not valid for the config", a)
	}

	out, err := json.Marshal(NewTypedConfig(0.2, 0.1, 0.95, 50))
	if err != nil {
		t.Fatal(err)
	}
	var again agent.TypedConfig
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatal(err)
	}
	if again.Config.(Config) != want {
		t.Errorf("round trip config = %+v, want %+v", again.Config, want)
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Epsilon: -0.1, LearningRate: 0.1, Discount: 1},
		{Epsilon: 0.1, LearningRate: 0, Discount: 1},
		{Epsilon: 0.1, LearningRate: 0.1, Discount: 1.1},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("expected %+v to be invalid", c)
		}
	}
}

func BenchmarkStep(b *testing.B) {
	e := newCorridor(b)
	q, err := New(e, Config{Epsilon: 0.1, LearningRate: 0.1,
		Discount: 0.99}, 1)
	if err != nil {
		b.Fatal(err)
	}

	position := e.Start()
	for i := 0; i < b.N; i++ {
		var done bool
		position, done = e.Step(position, q)
		if done {
			position = e.Start()
			q.Reset(e, position)
		}
	}
}
