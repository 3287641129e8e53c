package markup

import (
	"errors"
	"fmt"
)

var (
	// ErrAscendPastRoot means a span was closed more times than it was opened.
	ErrAscendPastRoot = errors.New("ascend past the root of the insertion stack")

	// ErrCommandDesync means the text and the resolved commands have lost
	// synchronization, e.g. a "#flip" marker met a dice result.
	ErrCommandDesync = errors.New("hash command stream out of sync with text")
)

// InvariantError is the panic value for programming-invariant violations of
// the parser. It never describes bad user input.
type InvariantError struct {
	Err    error
	Detail string
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func invariant(err error, format string, args ...any) {
	panic(&InvariantError{Err: err, Detail: fmt.Sprintf(format, args...)})
}
