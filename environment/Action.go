package environment

import "fmt"

// Action is a single movement that an agent can take in a grid. The set
// of actions available in an Env is fixed when the Env is constructed.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Stay
)

// CardinalActions returns the four movement actions Up, Down, Left and
// Right, in that order
func CardinalActions() []Action {
	return []Action{Up, Down, Left, Right}
}

// Delta returns the change in position that the action causes. The y
// axis grows downwards, so Up decreases y.
func (a Action) Delta() Position {
	switch a {
	case Up:
		return Position{X: 0, Y: -1}
	case Down:
		return Position{X: 0, Y: 1}
	case Left:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Stay:
		return "Stay"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// MarshalText implements the encoding.TextMarshaler interface
func (a Action) MarshalText() ([]byte, error) {
	if a < Up || a > Stay {
		return nil, fmt.Errorf("marshalText: no such action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (a *Action) UnmarshalText(text []byte) error {
	for _, action := range []Action{Up, Down, Left, Right, Stay} {
		if action.String() == string(text) {
			*a = action
			return nil
		}
	}
	return fmt.Errorf("unmarshalText: no such action %q", string(text))
}

// IndexOf returns the index of a in actions, or -1 if actions does not
// contain a
func IndexOf(actions []Action, a Action) int {
	for i := range actions {
		if actions[i] == a {
			return i
		}
	}
	return -1
}
