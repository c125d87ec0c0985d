package timestep

import (
	"testing"

	"github.com/google/uuid"

	env "github.com/samuelfneumann/gridagents/environment"
)

func TestNew(t *testing.T) {
	id := uuid.New()
	tr := env.Transition{
		Position:     env.Position{X: 1, Y: 1},
		Action:       env.Right,
		Reward:       -1,
		NextPosition: env.Position{X: 2, Y: 1},
	}

	step := New(id, tr, 3, 10)
	if step.Last() || step.Agent != id || step.Position != tr.NextPosition ||
		step.Reward != -1 || step.Number != 3 || step.Total != 10 {
		t.Errorf("New() = %v", step)
	}

	tr.Done = true
	if step := New(id, tr, 4, 11); !step.Last() {
		t.Error("a done transition should be the last step")
	}
}

func TestNewAborted(t *testing.T) {
	id := uuid.New()
	p := env.Position{X: 0, Y: 0}

	step := NewAborted(id, p, 2, 7)
	if !step.Aborted() || step.Last() {
		t.Errorf("NewAborted() has type %v", step.StepType)
	}
	if step.Agent != id || step.Position != p || step.Reward != 0 ||
		step.Number != 2 || step.Total != 7 {
		t.Errorf("NewAborted() = %v", step)
	}
	if got := step.StepType.String(); got != "Aborted" {
		t.Errorf("String() = %q, want \"Aborted\"", got)
	}
}
