package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/debug"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// frame is a fully rendered frame that has not been written yet.
type frame struct {
	rng         Range
	width       int
	marginWidth int

	header  []string
	margins []string
	lines   []string
	footer  []string

	cursor Cell
	focus  buffer.Pos
}

func (f *frame) height() int { return len(f.header) + len(f.lines) + len(f.footer) }

// row returns the complete text of frame row i, cut to the terminal width.
func (f *frame) row(i int) string {
	switch {
	case i < len(f.header):
		return f.fit(f.header[i])
	case i < len(f.header)+len(f.lines):
		j := i - len(f.header)
		return f.fit(f.margins[j] + f.lines[j])
	default:
		return f.fit(f.footer[i-len(f.header)-len(f.lines)])
	}
}

func (f *frame) fit(s string) string {
	if f.width <= 0 || ansi.StringWidth(s) <= f.width {
		return s
	}
	return ansi.Truncate(s, f.width, "")
}

func (f *frame) state(cur Cell) DrawState {
	return DrawState{
		Range:       f.rng,
		Height:      f.height(),
		Width:       f.width,
		Cursor:      cur,
		Focus:       f.focus,
		MarginWidth: f.marginWidth,
		Header:      f.header,
		Margins:     f.margins,
		Lines:       f.lines,
		Footer:      f.footer,
	}
}

// compose renders doc against the current terminal size, scrolling from the
// range drawn last.
func (r *Renderer) compose(doc Document) (*frame, error) {
	cols, rows, err := r.term.Size()
	if err != nil {
		debug.Log("render: size unavailable (%v), not scrolling", err)
		cols, rows = 0, math.MaxInt32
	}
	if r.cfg.MaxHeight > 0 {
		rows = min(rows, r.cfg.MaxHeight)
	}

	hdr, mrg, ftr := r.cfg.Style.header(), r.cfg.Style.margin(), r.cfg.Style.footer()
	if hdr.Rows()+ftr.Rows() >= rows {
		// Text wins: the frame must not outgrow the screen.
		debug.Log("render: %d rows leave no room for text, dropping header and footer", rows)
		hdr, ftr = NoStyle{}, NoStyle{}
	}
	budget := rows - hdr.Rows() - ftr.Rows()

	var prev Range
	if r.drawn {
		prev = r.state.Range
	}
	focus := doc.Cursor()
	f := &frame{
		rng:         Plan(doc.LineCount(), focus.Row, budget, prev),
		width:       cols,
		marginWidth: max(mrg.Width(doc), 0),
		focus:       focus,
	}

	if f.header, err = drawRows(hdr.Rows(), func(sb *strings.Builder) error { return hdr.Draw(sb, doc) }); err != nil {
		return nil, wrap("draw header", err)
	}
	if f.footer, err = drawRows(ftr.Rows(), func(sb *strings.Builder) error { return ftr.Draw(sb, doc) }); err != nil {
		return nil, wrap("draw footer", err)
	}

	f.margins = make([]string, 0, f.rng.Len())
	f.lines = make([]string, 0, f.rng.Len())
	for row := f.rng.Low; row < f.rng.High; row++ {
		var sb strings.Builder
		if err := mrg.DrawLine(&sb, doc, row); err != nil {
			return nil, wrap("draw margin", err)
		}
		f.margins = append(f.margins, sb.String())
		f.lines = append(f.lines, r.renderLine(doc, row))
	}

	col := f.marginWidth + grapheme.Prefix([]rune(doc.Line(focus.Row)), focus.Col, r.cfg.TabWidth)
	if cols > 0 {
		col = min(col, cols-1)
	}
	f.cursor = Cell{Row: len(f.header) + focus.Row - f.rng.Low, Col: col}
	return f, nil
}

// renderLine expands tabs and control characters in row and highlights the
// selected part of it.
func (r *Renderer) renderLine(doc Document, row int) string {
	line := doc.Line(row)
	sel, ok := doc.Selection()
	if !ok || r.cfg.Selection == nil || row < sel.Start.Row || row > sel.End.Row {
		return grapheme.Display(line, r.cfg.TabWidth)
	}

	runes := []rune(line)
	from, to := 0, len(runes)
	if row == sel.Start.Row {
		from = min(sel.Start.Col, len(runes))
	}
	if row == sel.End.Row {
		to = min(sel.End.Col, len(runes))
	}

	pre, col := grapheme.DisplayAt(string(runes[:from]), 0, r.cfg.TabWidth)
	mid, col := grapheme.DisplayAt(string(runes[from:to]), col, r.cfg.TabWidth)
	post, _ := grapheme.DisplayAt(string(runes[to:]), col, r.cfg.TabWidth)
	if mid != "" {
		mid = r.cfg.Selection(mid)
	}
	return pre + mid + post
}

// drawRows runs draw and splits its output into exactly n rows.
func drawRows(n int, draw func(*strings.Builder) error) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	var sb strings.Builder
	if err := draw(&sb); err != nil {
		return nil, err
	}
	rows := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	for len(rows) < n {
		rows = append(rows, "")
	}
	return rows[:n], nil
}
