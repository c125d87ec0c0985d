package environment

import "errors"

// ErrInvalidPosition is returned when a position lies outside the
// bounds of a grid
var ErrInvalidPosition = errors.New("position out of bounds")
