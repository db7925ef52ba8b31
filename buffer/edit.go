package buffer

// InsertChar inserts r at the focus, replacing the selection if any.
func (b *Buffer) InsertChar(r rune) {
	b.InsertString(string(r))
}

// InsertNewline splits the line at the focus.
func (b *Buffer) InsertNewline() {
	b.InsertString("\n")
}

// InsertString inserts s at the focus, replacing the selection if any. The
// focus ends just after the inserted text: each '\n' advances the row and the
// column becomes the length of the final segment.
func (b *Buffer) InsertString(s string) {
	changed := b.deleteSelection()
	if s == "" {
		if changed {
			b.version++
		}
		return
	}
	at := b.lines.clamp(b.sel.Focus)
	b.sel = Selection{Focus: b.lines.Insert(at, s)}
	b.version++
}

// DeleteBackward removes the selection, or the character before the focus,
// joining the line onto the previous one at column 0.
func (b *Buffer) DeleteBackward() {
	if b.deleteSelection() {
		b.version++
		return
	}
	p := b.lines.clamp(b.sel.Focus)
	switch {
	case p.Col > 0:
		b.lines.Remove(Range{Start: Pos{Row: p.Row, Col: p.Col - 1}, End: p})
		b.sel = Selection{Focus: Pos{Row: p.Row, Col: p.Col - 1}}
	case p.Row > 0:
		prev := Pos{Row: p.Row - 1, Col: b.lines.Len(p.Row - 1)}
		b.lines.Remove(Range{Start: prev, End: p})
		b.sel = Selection{Focus: prev}
	default:
		b.Clamp()
		return
	}
	b.version++
}

// DeleteForward removes the selection, or the character at the focus, joining
// the next line onto this one at the end of the line. The focus stays put.
func (b *Buffer) DeleteForward() {
	if b.deleteSelection() {
		b.version++
		return
	}
	p := b.lines.clamp(b.sel.Focus)
	switch {
	case p.Col < b.lines.Len(p.Row):
		b.lines.Remove(Range{Start: p, End: Pos{Row: p.Row, Col: p.Col + 1}})
	case p.Row < b.lines.Count()-1:
		b.lines.Remove(Range{Start: p, End: Pos{Row: p.Row + 1, Col: 0}})
	default:
		b.Clamp()
		return
	}
	b.sel = Selection{Focus: p}
	b.version++
}

// DeleteSelection removes the selected text and collapses the focus to the
// start of the removed range.
func (b *Buffer) DeleteSelection() {
	if b.deleteSelection() {
		b.version++
	}
}

// DeleteLine removes row together with one adjacent line break and returns
// the row's text. The focus stays on the same row number, clamped.
func (b *Buffer) DeleteLine(row int) string {
	if row < 0 || row >= b.lines.Count() {
		return ""
	}
	text := b.lines.Line(row)
	last := b.lines.Count() - 1
	switch {
	case row < last:
		b.lines.Remove(Range{Start: Pos{Row: row}, End: Pos{Row: row + 1}})
	case row > 0:
		b.lines.Remove(Range{Start: Pos{Row: row - 1, Col: b.lines.Len(row - 1)}, End: Pos{Row: row, Col: len(text)}})
	default:
		b.lines.Remove(Range{End: Pos{Col: len(text)}})
	}
	focus := Pos{Row: min(row, b.lines.Count()-1), Col: b.sel.Focus.Col}
	b.sel = Selection{Focus: b.lines.clamp(focus)}
	b.version++
	return text
}

// Unindent removes up to width leading spaces from the focus row.
func (b *Buffer) Unindent(width int) {
	p := b.lines.clamp(b.sel.Focus)
	line := b.lines.Runes(p.Row)
	n := 0
	for n < width && n < len(line) && line[n] == ' ' {
		n++
	}
	if n == 0 {
		return
	}
	b.lines.Remove(Range{Start: Pos{Row: p.Row}, End: Pos{Row: p.Row, Col: n}})
	b.sel = Selection{Focus: Pos{Row: p.Row, Col: max(p.Col-n, 0)}}
	b.version++
}

func (b *Buffer) deleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		if b.sel.Anchored {
			b.sel.Clear()
			return true
		}
		return false
	}
	b.lines.Remove(r)
	b.sel = Selection{Focus: r.Start}
	return true
}
