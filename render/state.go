package render

import "github.com/iw2rmb/quill/buffer"

// Cell is a terminal position relative to the top-left cell of the frame.
type Cell struct {
	Row int
	Col int
}

// DrawState records the last frame written to the terminal.
//
// Cursor is where the terminal cursor really is, which is not necessarily
// where the document cursor is drawn: every write and move updates it, and
// the next move is computed from it.
type DrawState struct {
	Range  Range
	Height int
	// Width is the terminal width used for the frame, 0 when unknown.
	Width  int
	Cursor Cell
	// Focus is the document cursor the frame was positioned for.
	Focus buffer.Pos

	MarginWidth int
	Header      []string
	Margins     []string
	Lines       []string
	Footer      []string
}

func (s DrawState) clone() DrawState {
	s.Header = append([]string(nil), s.Header...)
	s.Margins = append([]string(nil), s.Margins...)
	s.Lines = append([]string(nil), s.Lines...)
	s.Footer = append([]string(nil), s.Footer...)
	return s
}
