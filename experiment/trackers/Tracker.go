// Package trackers implements Trackers, which track and save data in
// an experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/gridagents/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// save gob encodes data to filename
func save(filename string, data interface{}) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save: could not close save file: %w", cerr)
		}
	}()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("save: could not encode data: %w", err)
	}
	return nil
}

// load decodes gob encoded data from filename into data
func load(filename string, data interface{}) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load: could not open data file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(data); err != nil {
		return fmt.Errorf("load: could not decode data: %w", err)
	}
	return nil
}
