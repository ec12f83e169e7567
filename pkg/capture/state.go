package capture

import "fmt"

// State is the lifecycle phase of a Session. Sessions are single-use: the
// only path is Idle -> Active -> Stopping -> Closed.
type State int

const (
	StateIdle State = iota
	StateActive
	StateStopping
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("unknown_state_%d", int(s))
}
