// Package tty switches a terminal in and out of raw mode and queries its size.
package tty

import (
	"errors"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when a raw-mode or size request targets a file
// descriptor that is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// IsTerminal reports whether fd refers to a terminal, including Cygwin and
// MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Size returns the terminal dimensions in cells.
func Size(fd uintptr) (cols, rows int, err error) {
	if !IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(int(fd))
}

// State is the terminal mode captured by MakeRaw.
type State struct {
	fd    uintptr
	saved savedMode
	done  bool
}

// MakeRaw puts fd into raw mode: no echo, no line buffering, no signal keys
// and no output post-processing. Call Restore on every exit path.
func MakeRaw(fd uintptr) (*State, error) {
	if !IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	saved, err := makeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &State{fd: fd, saved: saved}, nil
}

// Restore returns the terminal to the mode it had before MakeRaw. Calling it
// more than once is safe.
func (s *State) Restore() error {
	if s == nil || s.done {
		return nil
	}
	s.done = true
	return restore(s.fd, s.saved)
}
