package render

import "slices"

type redrawKind int

const (
	redrawNone redrawKind = iota
	redrawCursor
	redrawLine
	redrawFull
)

func (k redrawKind) String() string {
	switch k {
	case redrawNone:
		return "none"
	case redrawCursor:
		return "cursor"
	case redrawLine:
		return "line"
	default:
		return "full"
	}
}

// classify compares f with the frame on screen. Margins, header and footer
// are patched in place and do not count as line changes.
func (r *Renderer) classify(f *frame) (redrawKind, int) {
	st := &r.state
	if f.rng != st.Range || f.width != st.Width || f.marginWidth != st.MarginWidth ||
		len(f.header) != len(st.Header) || len(f.footer) != len(st.Footer) {
		return redrawFull, -1
	}

	diffs, row := 0, -1
	for i := range f.lines {
		if f.lines[i] != st.Lines[i] {
			diffs++
			row = i
		}
	}
	switch {
	case diffs > 1:
		return redrawFull, -1
	case diffs == 1:
		return redrawLine, row
	case f.focus != st.Focus || !slices.Equal(f.margins, st.Margins) ||
		!slices.Equal(f.header, st.Header) || !slices.Equal(f.footer, st.Footer):
		return redrawCursor, -1
	default:
		return redrawNone, -1
	}
}

// patch rewrites the text row line (-1 for none) and any decoration that
// changed, then moves the cursor into place.
func (r *Renderer) patch(f *frame, line int) error {
	st := &r.state
	top := len(f.header)

	for i := range f.header {
		if f.header[i] != st.Header[i] {
			if err := r.rewrite(i, f); err != nil {
				return err
			}
		}
	}
	for i := range f.lines {
		switch {
		case i == line:
			if err := r.rewrite(top+i, f); err != nil {
				return err
			}
		case f.margins[i] != st.Margins[i]:
			if err := r.moveTo(Cell{Row: top + i}); err != nil {
				return err
			}
			if err := r.write(f.fit(f.margins[i])); err != nil {
				return err
			}
		}
	}
	for i := range f.footer {
		if f.footer[i] != st.Footer[i] {
			if err := r.rewrite(top+len(f.lines)+i, f); err != nil {
				return err
			}
		}
	}

	if err := r.moveTo(f.cursor); err != nil {
		return err
	}
	r.state = f.state(r.cur)
	return nil
}

func (r *Renderer) rewrite(row int, f *frame) error {
	if err := r.moveTo(Cell{Row: row}); err != nil {
		return err
	}
	if err := r.clearLine(); err != nil {
		return err
	}
	return r.write(f.row(row))
}
