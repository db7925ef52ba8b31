package render

import (
	"bufio"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quill/internal/tty"
)

// Terminal is the output side of a terminal. Moves are relative to the current
// cursor except MoveToColumn, whose col is 0-based.
type Terminal interface {
	Write(s string) error
	MoveUp(n int) error
	MoveDown(n int) error
	MoveLeft(n int) error
	MoveRight(n int) error
	MoveToColumn(col int) error
	// ClearLine blanks the whole current row.
	ClearLine() error
	// ClearToEnd blanks from the cursor to the end of the screen.
	ClearToEnd() error
	// Size returns the dimensions in cells, or ErrNoSize.
	Size() (cols, rows int, err error)
	Flush() error
}

// PasteModeSetter is implemented by terminals that can report pastes as a
// single bracketed event.
type PasteModeSetter interface {
	SetBracketedPaste(on bool) error
}

type fder interface {
	Fd() uintptr
}

// ANSITerminal writes VT100/xterm control sequences to an io.Writer. Output is
// buffered until Flush.
type ANSITerminal struct {
	w  *bufio.Writer
	fd uintptr

	hasFD bool
}

// NewANSITerminal wraps w. When w is a terminal file its size is queried
// through the file descriptor; otherwise Size reports ErrNoSize.
func NewANSITerminal(w io.Writer) *ANSITerminal {
	t := &ANSITerminal{w: bufio.NewWriterSize(w, 16<<10)}
	if f, ok := w.(fder); ok {
		t.fd, t.hasFD = f.Fd(), true
	}
	return t
}

func (t *ANSITerminal) Write(s string) error {
	_, err := t.w.WriteString(s)
	return err
}

func (t *ANSITerminal) MoveUp(n int) error {
	if n <= 0 {
		return nil
	}
	return t.Write(ansi.CursorUp(n))
}

func (t *ANSITerminal) MoveDown(n int) error {
	if n <= 0 {
		return nil
	}
	return t.Write(ansi.CursorDown(n))
}

func (t *ANSITerminal) MoveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return t.Write(ansi.CursorBackward(n))
}

func (t *ANSITerminal) MoveRight(n int) error {
	if n <= 0 {
		return nil
	}
	return t.Write(ansi.CursorForward(n))
}

func (t *ANSITerminal) MoveToColumn(col int) error {
	return t.Write(ansi.CursorHorizontalAbsolute(max(col, 0) + 1))
}

func (t *ANSITerminal) ClearLine() error { return t.Write(ansi.EraseEntireLine) }

func (t *ANSITerminal) ClearToEnd() error { return t.Write(ansi.EraseScreenBelow) }

func (t *ANSITerminal) Size() (cols, rows int, err error) {
	if !t.hasFD {
		return 0, 0, ErrNoSize
	}
	cols, rows, err = tty.Size(t.fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, ErrNoSize
	}
	return cols, rows, nil
}

func (t *ANSITerminal) Flush() error { return t.w.Flush() }

func (t *ANSITerminal) SetBracketedPaste(on bool) error {
	if on {
		return t.Write(ansi.SetBracketedPasteMode)
	}
	return t.Write(ansi.ResetBracketedPasteMode)
}
