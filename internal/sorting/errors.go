package sorting

import (
	"errors"
	"fmt"
)

// Domain errors for recording and replay.
var (
	// ErrIndexOutOfRange indicates a step that addresses a position outside the array.
	ErrIndexOutOfRange = errors.New("sorting: step index out of range")

	// ErrUnknownAlgorithm indicates an algorithm name with no implementation.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrTooLong indicates an array longer than the configured bounds allow.
	ErrTooLong = errors.New("sorting: array exceeds maximum length")

	// ErrValueBounds indicates a value outside the configured range.
	ErrValueBounds = errors.New("sorting: value out of bounds")
)

// StepError wraps an error with the step that caused it.
type StepError struct {
	Index   int
	Step    Step
	Len     int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v: step %d (%s) against length %d", e.Wrapped, e.Index, e.Step, e.Len)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
