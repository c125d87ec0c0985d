package trackers

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"

	env "github.com/samuelfneumann/gridagents/environment"
	ts "github.com/samuelfneumann/gridagents/timestep"
)

func steps(agent uuid.UUID, rewards ...float64) []ts.TimeStep {
	var out []ts.TimeStep
	for i, r := range rewards {
		step := ts.TimeStep{Agent: agent, Reward: r, Number: i + 1}
		if i == len(rewards)-1 {
			step.StepType = ts.Last
		}
		out = append(out, step)
	}
	return out
}

func TestReturn(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	filename := filepath.Join(t.TempDir(), "return.bin")
	r := NewReturn(filename)

	// Interleave the steps of two agents
	first := steps(a, -1, -1, 0)
	second := steps(b, -1, 5)
	r.Track(first[0])
	r.Track(second[0])
	r.Track(first[1])
	r.Track(second[1])
	r.Track(first[2])
	for _, step := range steps(a, -1) {
		r.Track(step)
	}
	r.Track(ts.TimeStep{Agent: b, Reward: -1, Number: 1})

	if got := r.Returns(a); !reflect.DeepEqual(got, []float64{-2, -1}) {
		t.Errorf("returns of a = %v, want [-2 -1]", got)
	}
	if got := r.Returns(b); !reflect.DeepEqual(got, []float64{4}) {
		t.Errorf("returns of b = %v, want [4]", got)
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := LoadReturns(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(data[b.String()], []float64{4}) {
		t.Errorf("loaded returns of b = %v, want [4]", data[b.String()])
	}
}

func TestReturnPanicsOnSkippedStep(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.TimeStep{Agent: uuid.New(), Number: 2})
}

func TestEpisodeLength(t *testing.T) {
	a := uuid.New()
	filename := filepath.Join(t.TempDir(), "length.bin")
	e := NewEpisodeLength(filename)

	for _, step := range append(steps(a, 0, 0, 0), steps(a, 0)...) {
		e.Track(step)
	}
	if got := e.Lengths(a); !reflect.DeepEqual(got, []int{3, 1}) {
		t.Errorf("lengths = %v, want [3 1]", got)
	}

	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := LoadEpisodeLengths(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(data[a.String()], []int{3, 1}) {
		t.Errorf("loaded lengths = %v, want [3 1]", data[a.String()])
	}
}

func TestAbortedEpisodes(t *testing.T) {
	a := uuid.New()
	r := NewReturn(filepath.Join(t.TempDir(), "return.bin"))
	e := NewEpisodeLength(filepath.Join(t.TempDir(), "length.bin"))

	// Two steps of an abandoned episode followed by a complete one
	abandoned := steps(a, -1, -1)[:1]
	abandoned = append(abandoned, ts.NewAborted(a, env.Position{}, 1, 1))
	for _, step := range append(abandoned, steps(a, -2, 5)...) {
		r.Track(step)
		e.Track(step)
	}

	if got := r.Returns(a); !reflect.DeepEqual(got, []float64{3}) {
		t.Errorf("returns = %v, want [3]", got)
	}
	if got := e.Lengths(a); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("lengths = %v, want [2]", got)
	}
}

func TestSaveReportsWriteErrors(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full on this system")
	}

	r := NewReturn("/dev/full")
	for _, step := range steps(uuid.New(), 1, 2) {
		r.Track(step)
	}
	if err := r.Save(); err == nil {
		t.Error("expected an error saving to a full device")
	}
}
