package engine

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNilChart indicates a nil chart was passed to Evaluate.
	ErrNilChart = errors.New("chart cannot be nil")

	// ErrInvalidConfig indicates invalid engine configuration.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// InputShapeError indicates a timeline element could not be interpreted at
// all. This is a structural defect in the input, distinct from the domain's
// intentional "no verdict found" outcome.
type InputShapeError struct {
	// Index is the position of the offending element in the timeline.
	Index int

	// Message describes what was missing.
	Message string
}

// Error returns the error message.
func (e *InputShapeError) Error() string {
	return fmt.Sprintf("aspect timeline element %d: %s", e.Index, e.Message)
}
