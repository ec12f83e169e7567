package slidestore

import "fmt"

// ErrCommit means a slide accepted by the capture loop could not be made
// durable; it carries the identity needed to locate the partial output.
type ErrCommit struct {
	SessionID string
	Sequence  uint
	Err       error
}

var _ error = ErrCommit{}

func (e ErrCommit) Error() string {
	return fmt.Sprintf("unable to commit slide %d of session '%s': %v", e.Sequence, e.SessionID, e.Err)
}

func (e ErrCommit) Unwrap() error {
	return e.Err
}
