package trackers

import (
	"github.com/google/uuid"

	ts "github.com/samuelfneumann/gridagents/timestep"
)

// EpisodeLength tracks and saves the lengths of each agent's episodes
// in an experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths map[uuid.UUID][]int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{
		episodeLengths: make(map[uuid.UUID][]int),
		filename:       filename,
	}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in an episode. Aborted episodes have no length.
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths[t.Agent] = append(e.episodeLengths[t.Agent],
			t.Number)
	}
}

// Lengths returns the lengths of the completed episodes of agent
func (e *EpisodeLength) Lengths(agent uuid.UUID) []int {
	return append([]int(nil), e.episodeLengths[agent]...)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	data := make(map[string][]int, len(e.episodeLengths))
	for id, lengths := range e.episodeLengths {
		data[id.String()] = lengths
	}
	return save(e.filename, data)
}

// LoadEpisodeLengths loads the episode lengths saved by an
// EpisodeLength Tracker
func LoadEpisodeLengths(filename string) (map[string][]int, error) {
	var data map[string][]int
	if err := load(filename, &data); err != nil {
		return nil, err
	}
	return data, nil
}
