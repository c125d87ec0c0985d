package qlearning

import (
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	weights      *mat.Dense
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// weights are the weights of the policy to learn
func NewQLearner(weights *mat.Dense, learningRate,
	discount float64) *QLearner {
	return &QLearner{weights, learningRate, discount}
}

// Learn updates the weights of the Agent's Learner and Policy from a
// single transition
func (q *QLearner) Learn(state mat.Vector, action int, reward float64,
	nextState mat.Vector) {
	numActions, _ := q.weights.Dims()

	// Calculate the action values in the next state
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(q.weights, nextState)

	// Find the maximum action value in the next state
	maxVal := mat.Max(actionValues)

	// Create the update target
	target := reward + q.discount*maxVal

	// Find the current estimate of the taken action
	weights := q.weights.RowView(action)
	currentEstimate := mat.Dot(weights, state)

	// Construct the scaling factor of the gradient
	scale := q.learningRate * (target - currentEstimate)

	// Perform gradient descent: ∇weights = scale * state
	newWeights := mat.NewVecDense(weights.Len(), nil)
	newWeights.AddScaledVec(weights, scale, state)
	q.weights.SetRow(action, newWeights.RawVector().Data)
}
