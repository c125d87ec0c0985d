package checkpointer

import (
	"reflect"
	"strings"
	"testing"

	ts "github.com/samuelfneumann/gridagents/timestep"
)

type recorder struct {
	saved []string
}

func (r *recorder) Save(filename string) error {
	r.saved = append(r.saved, filename)
	return nil
}

func TestNStep(t *testing.T) {
	r := &recorder{}
	c, err := NewNStep(3, r, FilenameEnumerator(0, "agent-", ".bin"))
	if err != nil {
		t.Fatal(err)
	}

	for total := 1; total <= 7; total++ {
		if err := c.Checkpoint(ts.TimeStep{Total: total}); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"agent-1.bin", "agent-2.bin"}
	if !reflect.DeepEqual(r.saved, want) {
		t.Errorf("saved = %v, want %v", r.saved, want)
	}

	if _, err := NewNStep(0, r, nil); err == nil {
		t.Error("expected an error for a zero interval")
	}
}

func TestFileTimer(t *testing.T) {
	name := FileTimer("run", ".png")()
	if !strings.HasPrefix(name, "run-") || !strings.HasSuffix(name, ".png") {
		t.Errorf("filename = %q", name)
	}
}
