// Package policy implements policies using linear function
// approximation over discrete actions
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gridagents/utils/floatutils"
)

const (
	// Keys for weights map: map[string]*mat.Dense
	WeightsKey string = "weights"
)

// EGreedy implements an ε-greedy policy using linear function
// approximation. Ties between greedy actions are broken uniformly at
// random.
type EGreedy struct {
	weights *mat.Dense // rows = actions, cols = features
	epsilon float64
	seed    rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected; features is the
// number of features in a given feature vector for the environment;
// actions are the number of actions in the environment
func NewEGreedy(e float64, seed uint64, features,
	actions int) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"have %v", e)
	}
	if features <= 0 || actions <= 0 {
		return nil, fmt.Errorf("newEGreedy: need at least one feature and "+
			"one action, have %d features and %d actions", features, actions)
	}

	source := rand.NewSource(seed)
	weights := mat.NewDense(actions, features, nil)

	return &EGreedy{weights, e, source}, nil
}

// Weights gets and returns the weights of the EGreedy policy as a
// string description -> weights
func (p *EGreedy) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[WeightsKey] = p.weights

	return weights
}

// SetWeights sets the weight pointers to point to a new set of weights.
// The SetWeights function can take the output of a call to Weights()
// on another EGreedy Policy directly
func (p *EGreedy) SetWeights(weights map[string]*mat.Dense) error {
	newWeights, ok := weights[WeightsKey]
	if !ok {
		return fmt.Errorf("setWeights: no weights named \"%v\"", WeightsKey)
	}

	r, c := p.weights.Dims()
	if nr, nc := newWeights.Dims(); nr != r || nc != c {
		return fmt.Errorf("setWeights: weights have shape (%d, %d), want "+
			"(%d, %d)", nr, nc, r, c)
	}

	p.weights = newWeights
	return nil
}

// ActionValues returns the value of each action given the features obs
func (p *EGreedy) ActionValues(obs mat.Vector) *mat.VecDense {
	numActions, _ := p.weights.Dims()
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(p.weights, obs)

	return actionValues
}

// Probabilities returns the probability of selecting each action given
// the features obs
func (p *EGreedy) Probabilities(obs mat.Vector) []float64 {
	actionValues := p.ActionValues(obs).RawVector().Data
	numActions := len(actionValues)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	actionProbabilites := make([]float64, numActions)
	for i := range actionProbabilites {
		actionProbabilites[i] = prob
	}

	// Share the greedy probability between all greedy actions
	_, greedy := floatutils.MaxSlice(actionValues)
	for _, i := range greedy {
		actionProbabilites[i] += (1.0 - p.epsilon) / float64(len(greedy))
	}

	return actionProbabilites
}

// SelectAction selects the index of an action from an ε-greedy policy
func (p *EGreedy) SelectAction(obs mat.Vector) int {
	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(p.Probabilities(obs), p.seed)

	return int(dist.Rand())
}
