package environment

// StepLimit ends episodes once some number of steps have been taken.
// Agents own the decision of when their episode is done and can use a
// StepLimit to bound episode length.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit. A limit of zero
// or less never ends an episode.
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End returns whether an episode which has taken steps steps should be
// ended
func (s StepLimit) End(steps int) bool {
	return s.episodeSteps > 0 && steps >= s.episodeSteps
}

// Steps returns the episode step limit
func (s StepLimit) Steps() int {
	return s.episodeSteps
}
