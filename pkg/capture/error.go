package capture

import "fmt"

// ErrConfig means a capture parameter was invalid or missing at Start; the
// session stays Idle.
type ErrConfig struct {
	Field string
	Err   error
}

var _ error = ErrConfig{}

func (e ErrConfig) Error() string {
	return fmt.Sprintf("invalid capture configuration, field '%s': %v", e.Field, e.Err)
}

func (e ErrConfig) Unwrap() error {
	return e.Err
}

// ErrAlreadyStarted means Start was called on a session that already left
// the Idle state; sessions are single-use.
type ErrAlreadyStarted struct {
	State State
}

var _ error = ErrAlreadyStarted{}

func (e ErrAlreadyStarted) Error() string {
	return fmt.Sprintf("the session was already started (current state: %s)", e.State)
}
