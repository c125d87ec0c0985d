package policy

// NewGreedy creates a new greedy policy, an EGreedy policy which never
// selects actions at random
func NewGreedy(seed uint64, features, actions int) (*EGreedy, error) {
	return NewEGreedy(0.0, seed, features, actions)
}
