package editor

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the session; the dispatcher ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// ErrClipboardUnavailable is returned by SystemClipboard when the platform
// has no clipboard utility.
var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

// SystemClipboard is the desktop clipboard (pbcopy, xclip, xsel, wl-copy or
// the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(s)
}

// OSC52Clipboard copies through the terminal with the OSC 52 escape
// sequence, which also works over SSH. Terminals rarely allow reading the
// clipboard back, so ReadText returns the last text written.
type OSC52Clipboard struct {
	w    io.Writer
	mode func(osc52.Sequence) osc52.Sequence
	last string
}

// NewOSC52Clipboard writes sequences to w, wrapped for tmux or screen when
// the environment says the terminal runs inside one.
func NewOSC52Clipboard(w io.Writer) *OSC52Clipboard {
	c := &OSC52Clipboard{w: w, mode: func(s osc52.Sequence) osc52.Sequence { return s }}
	switch {
	case os.Getenv("TMUX") != "":
		c.mode = osc52.Sequence.Tmux
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		c.mode = osc52.Sequence.Screen
	}
	return c
}

func (c *OSC52Clipboard) ReadText() (string, error) { return c.last, nil }

func (c *OSC52Clipboard) WriteText(s string) error {
	c.last = s
	_, err := c.mode(osc52.New(s)).WriteTo(c.w)
	return err
}

// MemoryClipboard keeps the text in the process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
