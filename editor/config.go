package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/render"
)

// ErrInvalidConfig is wrapped by the errors New and NewModel return for a
// Config they cannot use.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Session or a Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// Cursor is the initial cursor. Nil places it at the end of Text.
	Cursor *buffer.Pos

	// Input and Output are the terminal streams of a Session. When Input
	// is a terminal it is switched to raw mode for the session.
	Input  io.Reader
	Output io.Writer
	// Terminal replaces the ANSI terminal built on Output.
	Terminal render.Terminal

	// Lazy redraws only what changed between frames.
	Lazy bool
	// MaxHeight caps the frame height, decorations included. Zero means
	// the terminal height.
	MaxHeight int
	// TabWidth is the tab stop and indent width. Zero means 4.
	TabWidth int

	Header render.Header
	Margin render.Margin
	Footer render.Footer
	Style  Style

	// KeyMap is used by the default dispatcher. A KeyMap without a Stop
	// binding is replaced by DefaultKeyMap.
	KeyMap KeyMap
	// Dispatcher replaces the default KeyDispatcher.
	Dispatcher Dispatcher
	// Clipboard backs copy, cut and paste in the default dispatcher.
	Clipboard Clipboard
}

func (cfg Config) validate(needIO bool) error {
	switch {
	case cfg.MaxHeight < 0:
		return fmt.Errorf("%w: negative MaxHeight %d", ErrInvalidConfig, cfg.MaxHeight)
	case cfg.TabWidth < 0:
		return fmt.Errorf("%w: negative TabWidth %d", ErrInvalidConfig, cfg.TabWidth)
	case needIO && cfg.Input == nil:
		return fmt.Errorf("%w: nil Input", ErrInvalidConfig)
	case needIO && cfg.Output == nil && cfg.Terminal == nil:
		return fmt.Errorf("%w: nil Output", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config) newBuffer() *buffer.Buffer {
	if cfg.Cursor != nil {
		return buffer.New(cfg.Text, buffer.Options{Cursor: *cfg.Cursor})
	}
	b := buffer.New("", buffer.Options{})
	b.SetContents(cfg.Text)
	return b
}

func (cfg Config) dispatcher() Dispatcher {
	if cfg.Dispatcher != nil {
		return cfg.Dispatcher
	}
	km := cfg.KeyMap
	if len(km.Stop.Keys()) == 0 {
		km = DefaultKeyMap()
	}
	d := NewKeyDispatcher(km, cfg.Clipboard)
	if cfg.TabWidth > 0 {
		d.TabWidth = cfg.TabWidth
	}
	return d
}

func (cfg Config) renderConfig() render.Config {
	sel := cfg.Style.Selection
	return render.Config{
		Lazy:      cfg.Lazy,
		MaxHeight: cfg.MaxHeight,
		TabWidth:  cfg.TabWidth,
		Style: render.Style{
			Header: cfg.Header,
			Margin: cfg.Margin,
			Footer: cfg.Footer,
		},
		Selection: func(s string) string { return sel.Render(s) },
	}
}
