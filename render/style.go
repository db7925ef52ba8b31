package render

import (
	"io"

	"github.com/iw2rmb/quill/buffer"
)

// Document is the read-only view of the text the renderer draws.
// *buffer.Buffer implements it.
type Document interface {
	LineCount() int
	CharCount() int
	Line(row int) string
	Cursor() buffer.Pos
	Selection() (buffer.Range, bool)
}

// Header draws a fixed number of rows above the text. Rows are separated by
// '\n' in the output.
type Header interface {
	Rows() int
	Draw(w io.Writer, doc Document) error
}

// Margin draws the gutter cell to the left of each line. Every cell must be
// exactly Width cells wide.
type Margin interface {
	Width(doc Document) int
	DrawLine(w io.Writer, doc Document, row int) error
}

// Footer draws a fixed number of rows below the text.
type Footer interface {
	Rows() int
	Draw(w io.Writer, doc Document) error
}

// NoStyle is the empty decoration. It serves as Header, Margin and Footer.
type NoStyle struct{}

func (NoStyle) Rows() int                               { return 0 }
func (NoStyle) Width(Document) int                      { return 0 }
func (NoStyle) Draw(io.Writer, Document) error          { return nil }
func (NoStyle) DrawLine(io.Writer, Document, int) error { return nil }

// Style bundles the three decorations. Nil members draw nothing.
type Style struct {
	Header Header
	Margin Margin
	Footer Footer
}

func (s Style) header() Header {
	if s.Header == nil {
		return NoStyle{}
	}
	return s.Header
}

func (s Style) margin() Margin {
	if s.Margin == nil {
		return NoStyle{}
	}
	return s.Margin
}

func (s Style) footer() Footer {
	if s.Footer == nil {
		return NoStyle{}
	}
	return s.Footer
}
