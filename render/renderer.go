package render

import (
	"github.com/iw2rmb/quill/internal/debug"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// Config configures a Renderer.
type Config struct {
	// Lazy enables incremental redraws. When false every Redraw repaints
	// the whole frame.
	Lazy bool

	// MaxHeight caps the frame height in rows, decorations included.
	// Zero means the terminal height.
	MaxHeight int

	// TabWidth is the tab stop distance. Zero means 4.
	TabWidth int

	Style Style

	// Selection decorates the selected part of a line. Nil draws the
	// selection like any other text.
	Selection func(string) string
}

// Renderer draws a Document inline at the terminal cursor and keeps the
// frame up to date with as few writes as it can.
//
// The frame is anchored at the row the cursor was on when Draw was first
// called; the renderer never moves above it and never uses absolute rows.
type Renderer struct {
	term Terminal
	cfg  Config

	drawn bool
	state DrawState
	cur   Cell
	width int
}

// New returns a renderer writing to term.
func New(term Terminal, cfg Config) *Renderer {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = grapheme.DefaultTabWidth
	}
	return &Renderer{term: term, cfg: cfg}
}

// Config returns the configuration in use.
func (r *Renderer) Config() Config { return r.cfg }

// State returns a copy of the last drawn frame. The zero value means nothing
// is on screen.
func (r *Renderer) State() DrawState {
	if !r.drawn {
		return DrawState{}
	}
	st := r.state.clone()
	st.Cursor = r.cur
	return st
}

// Drawn reports whether a frame is on screen.
func (r *Renderer) Drawn() bool { return r.drawn }

// Draw paints doc from scratch, clearing any previous frame first.
func (r *Renderer) Draw(doc Document) error {
	f, err := r.compose(doc)
	if err != nil {
		return err
	}
	if err := r.full(f); err != nil {
		return err
	}
	return r.flush()
}

// Redraw brings the screen up to date with doc. Depending on what changed
// since the last frame it does nothing, moves the cursor, rewrites one line
// or repaints the frame.
func (r *Renderer) Redraw(doc Document) error {
	if !r.drawn || !r.cfg.Lazy {
		return r.Draw(doc)
	}
	f, err := r.compose(doc)
	if err != nil {
		return err
	}

	kind, row := r.classify(f)
	debug.Log("render: %s range=%d..%d focus=%s", kind, f.rng.Low, f.rng.High, f.focus)
	switch kind {
	case redrawNone:
		return nil
	case redrawCursor:
		err = r.patch(f, -1)
	case redrawLine:
		err = r.patch(f, row)
	default:
		err = r.full(f)
	}
	if err != nil {
		return err
	}
	return r.flush()
}

// ClearDraw erases the frame and leaves the terminal cursor in column 0 of
// the row the frame started on.
func (r *Renderer) ClearDraw() error {
	if err := r.clear(); err != nil {
		return err
	}
	return r.flush()
}

// Finish erases the frame so the caller can print the result in its place.
func (r *Renderer) Finish() error {
	debug.Log("render: finish")
	return r.ClearDraw()
}

// full clears the current frame and paints f.
func (r *Renderer) full(f *frame) error {
	if err := r.clear(); err != nil {
		return err
	}
	r.width = f.width
	// The column is unknown before the first frame.
	if err := r.term.MoveToColumn(0); err != nil {
		return wrap("move", err)
	}
	r.cur.Col = 0
	last := f.height() - 1
	if last < 0 {
		if err := r.clearToEnd(); err != nil {
			return err
		}
	}
	for i := range f.height() {
		if i > 0 {
			if err := r.newline(); err != nil {
				return err
			}
		}
		// The last row erases everything below before it is written. A row
		// as wide as the screen leaves the cursor on its final cell, which
		// a later erase would blank.
		erase := r.clearLine
		if i == last {
			erase = r.clearToEnd
		}
		if err := erase(); err != nil {
			return err
		}
		if err := r.write(f.row(i)); err != nil {
			return err
		}
	}
	if err := r.moveTo(f.cursor); err != nil {
		return err
	}
	r.state = f.state(r.cur)
	r.drawn = true
	return nil
}

func (r *Renderer) clear() error {
	if !r.drawn {
		return nil
	}
	if err := r.moveTo(Cell{}); err != nil {
		return err
	}
	if err := r.clearToEnd(); err != nil {
		return err
	}
	r.drawn = false
	r.state = DrawState{}
	r.cur = Cell{}
	return nil
}

func (r *Renderer) flush() error {
	return wrap("flush", r.term.Flush())
}
