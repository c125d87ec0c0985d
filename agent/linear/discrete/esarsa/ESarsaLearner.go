package esarsa

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gridagents/agent/linear/discrete/policy"
)

// ESarsaLearner implements the update functionality for the Expected
// Sarsa algorithm.
type ESarsaLearner struct {
	target       *policy.EGreedy
	weights      *mat.Dense
	learningRate float64
	discount     float64
}

// NewESarsaLearner creates a new ESarsaLearner which learns the
// weights of the target policy
func NewESarsaLearner(target *policy.EGreedy, learningRate,
	discount float64) *ESarsaLearner {
	weights := target.Weights()[policy.WeightsKey]
	return &ESarsaLearner{target, weights, learningRate, discount}
}

// Learn updates the weights of the Agent's Learner and Policy from a
// single transition
func (e *ESarsaLearner) Learn(state mat.Vector, action int, reward float64,
	nextState mat.Vector) {
	// Calculate the action values in the next state
	actionValues := e.target.ActionValues(nextState)

	// Find the target policy's probability of each action
	probs := e.target.Probabilities(nextState)
	targetProbs := mat.NewVecDense(len(probs), probs)

	// Create the update target
	expectedQ := mat.Dot(targetProbs, actionValues)
	target := reward + e.discount*expectedQ

	// Find the current estimate of the taken action
	weights := e.weights.RowView(action)
	currentEstimate := mat.Dot(weights, state)

	// Construct the scaling factor of the gradient
	scale := e.learningRate * (target - currentEstimate)

	// Perform gradient descent: ∇weights = scale * state
	newWeights := mat.NewVecDense(weights.Len(), nil)
	newWeights.AddScaledVec(weights, scale, state)
	e.weights.SetRow(action, newWeights.RawVector().Data)
}
