package generation

import (
	"errors"
	"fmt"
)

// ErrUnparsableResponse is returned when the repair heuristics were exhausted
// without producing valid JSON from the model output.
var ErrUnparsableResponse = errors.New("model response could not be parsed as JSON")

// TransportError wraps a failure to reach the completion API or a non-success
// status from it. The pipeline does not retry; callers decide.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion API request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
