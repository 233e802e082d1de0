package problemgen

import (
	"errors"
	"fmt"
)

// MaxSamplingAttempts caps every rejection-sampling loop in a generator.
const MaxSamplingAttempts = 1000

var (
	// ErrInvalidLevel is returned for a level outside 1-4.
	ErrInvalidLevel = errors.New("level must be between 1 and 4")

	// ErrSamplingExhausted is returned when a generator cannot draw valid
	// operands within MaxSamplingAttempts.
	ErrSamplingExhausted = errors.New("rejection sampling exhausted")

	// ErrNoQuestions is returned when a batch produced nothing at all.
	ErrNoQuestions = errors.New("no questions produced")
)

// UnknownModuleError is returned when no generator is registered for a module.
type UnknownModuleError struct {
	Module string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Module)
}

// UnknownOperationError is returned when a level enables an operation tag
// the topic generator does not implement.
type UnknownOperationError struct {
	Module    string
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("module %s: unknown operation %q", e.Module, e.Operation)
}

// ShortBatchError is returned alongside a partial batch when fewer questions
// than requested could be produced.
type ShortBatchError struct {
	Module string
	Level  int
	Want   int
	Got    int
}

func (e *ShortBatchError) Error() string {
	return fmt.Sprintf("module %s level %d: produced %d of %d questions", e.Module, e.Level, e.Got, e.Want)
}

// Unwrap reports ErrNoQuestions for an empty batch.
func (e *ShortBatchError) Unwrap() error {
	if e.Got == 0 {
		return ErrNoQuestions
	}
	return nil
}

// Retry calls draw until it reports success, giving up with
// ErrSamplingExhausted after MaxSamplingAttempts.
func Retry(draw func() bool) error {
	for range MaxSamplingAttempts {
		if draw() {
			return nil
		}
	}
	return ErrSamplingExhausted
}
