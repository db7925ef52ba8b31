package render

import (
	"errors"
	"fmt"
)

// ErrNoSize is returned by Terminal.Size when the dimensions are unknown.
var ErrNoSize = errors.New("terminal size unavailable")

// Error reports a failed terminal operation. Renderer methods return it
// without retrying; the frame is left as far as it got.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("render: %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
