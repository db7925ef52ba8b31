package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/cancelreader"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/input"
	"github.com/iw2rmb/quill/internal/debug"
	"github.com/iw2rmb/quill/internal/tty"
	"github.com/iw2rmb/quill/render"
)

// Session is one interactive edit. It owns the terminal from Run until Run
// returns.
type Session struct {
	cfg        Config
	buf        *buffer.Buffer
	term       render.Terminal
	renderer   *render.Renderer
	dispatcher Dispatcher
}

type fder interface {
	Fd() uintptr
}

// New validates cfg and prepares a session. Nothing is drawn until Run.
func New(cfg Config) (*Session, error) {
	if err := cfg.validate(true); err != nil {
		return nil, err
	}
	term := cfg.Terminal
	if term == nil {
		term = render.NewANSITerminal(cfg.Output)
	}
	return &Session{
		cfg:        cfg,
		buf:        cfg.newBuffer(),
		term:       term,
		renderer:   render.New(term, cfg.renderConfig()),
		dispatcher: cfg.dispatcher(),
	}, nil
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Renderer exposes the renderer, mainly for inspecting the last frame.
func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Run draws the buffer and edits it until the dispatcher stops or the input
// ends, then erases the frame and returns the text without its trailing
// newline.
//
// A terminal Input is put in raw mode and bracketed paste is enabled for the
// duration of Run; both are undone on every return path.
func (s *Session) Run() (text string, err error) {
	in := s.cfg.Input
	if f, ok := in.(fder); ok && tty.IsTerminal(f.Fd()) {
		st, rawErr := tty.MakeRaw(f.Fd())
		if rawErr != nil {
			return "", fmt.Errorf("enable raw mode: %w", rawErr)
		}
		defer func() {
			if rerr := st.Restore(); rerr != nil {
				err = errors.Join(err, fmt.Errorf("restore terminal: %w", rerr))
			}
		}()

		// A read left pending by an ESC wait is cancelled so it cannot
		// swallow input meant for whatever runs after the session.
		if cr, cerr := cancelreader.NewReader(in); cerr == nil {
			in = cr
			defer func() {
				cr.Cancel()
				_ = cr.Close()
			}()
		} else {
			debug.Log("session: input not cancellable: %v", cerr)
		}

		if p, ok := s.term.(render.PasteModeSetter); ok {
			if perr := p.SetBracketedPaste(true); perr != nil {
				return "", fmt.Errorf("enable bracketed paste: %w", perr)
			}
			defer func() {
				perr := p.SetBracketedPaste(false)
				if perr == nil {
					perr = s.term.Flush()
				}
				if perr != nil {
					err = errors.Join(err, fmt.Errorf("disable bracketed paste: %w", perr))
				}
			}()
		}
	}

	reader := input.NewReader(in)
	if err := s.renderer.Draw(s.buf); err != nil {
		return "", err
	}
	for {
		ev, err := reader.ReadEvent()
		if errors.Is(err, io.EOF) {
			debug.Log("session: input closed")
			break
		}
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		debug.Log("session: key %s", ev)

		more := s.dispatcher.Dispatch(ev, s.buf)
		if err := s.renderer.Redraw(s.buf); err != nil {
			return "", err
		}
		if !more {
			debug.Log("session: stopped by %s", ev)
			break
		}
	}

	if err := s.renderer.Finish(); err != nil {
		return "", err
	}
	return s.buf.Contents(), nil
}

// Read runs a session on cfg and returns the text entered.
func Read(cfg Config) (string, error) {
	s, err := New(cfg)
	if err != nil {
		return "", err
	}
	return s.Run()
}
