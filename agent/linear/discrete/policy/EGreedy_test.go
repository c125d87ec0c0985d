package policy

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func TestProbabilities(t *testing.T) {
	p, err := NewEGreedy(0.2, 1, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Actions 1 and 3 are greedy in the first state
	p.weights.Copy(mat.NewDense(4, 2, []float64{
		0, 0,
		2, 0,
		1, 0,
		2, 0,
	}))
	obs := mat.NewVecDense(2, []float64{1, 0})

	got := p.Probabilities(obs)
	want := []float64{0.05, 0.45, 0.05, 0.45}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("probabilities = %v, want %v", got, want)
	}
	if s := floats.Sum(got); !scalar.EqualWithinAbs(s, 1, 1e-12) {
		t.Errorf("probabilities sum to %v", s)
	}
}

func TestGreedySelectAction(t *testing.T) {
	p, err := NewGreedy(5, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	p.weights.Set(2, 1, 1.0)
	obs := mat.NewVecDense(3, []float64{0, 1, 0})

	for i := 0; i < 100; i++ {
		if a := p.SelectAction(obs); a != 2 {
			t.Fatalf("greedy action = %d, want 2", a)
		}
	}
}

func TestSelectActionCoversAllActions(t *testing.T) {
	p, err := NewEGreedy(1.0, 9, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	obs := mat.NewVecDense(1, []float64{1})

	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		counts[p.SelectAction(obs)]++
	}
	for a, n := range counts {
		if n < 800 {
			t.Errorf("action %d selected %d / 4000 times", a, n)
		}
	}
}

func TestNewEGreedy(t *testing.T) {
	if _, err := NewEGreedy(1.5, 1, 1, 1); err == nil {
		t.Error("expected an error for epsilon > 1")
	}
	if _, err := NewEGreedy(0.1, 1, 0, 4); err == nil {
		t.Error("expected an error for zero features")
	}

	p, _ := NewEGreedy(0.1, 1, 2, 2)
	q, _ := NewEGreedy(0.1, 1, 2, 3)
	if err := p.SetWeights(q.Weights()); err == nil {
		t.Error("expected an error for mismatched weight shapes")
	}
}
