package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

// Move describes a cursor motion. Extend keeps (or starts) a selection
// anchored where the motion began; otherwise the selection is dropped.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move applies m.
func (b *Buffer) Move(m Move) {
	switch m.Unit {
	case MoveRune:
		switch m.Dir {
		case DirLeft:
			b.MoveLeft(m.Extend)
		case DirRight:
			b.MoveRight(m.Extend)
		case DirUp:
			b.MoveUp(m.Extend)
		case DirDown:
			b.MoveDown(m.Extend)
		case DirHome:
			b.MoveToLineStart(m.Extend)
		case DirEnd:
			b.MoveToLineEnd(m.Extend)
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			b.MoveWordLeft(m.Extend)
		case DirRight:
			b.MoveWordRight(m.Extend)
		case DirHome:
			b.MoveToLineStart(m.Extend)
		case DirEnd:
			b.MoveToLineEnd(m.Extend)
		}
	case MoveLine:
		switch m.Dir {
		case DirUp:
			b.MoveUp(m.Extend)
		case DirDown:
			b.MoveDown(m.Extend)
		case DirHome:
			b.MoveToLineStart(m.Extend)
		case DirEnd:
			b.MoveToLineEnd(m.Extend)
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			b.MoveToTop(m.Extend)
		case DirEnd, DirDown, DirRight:
			b.MoveToBottom(m.Extend)
		}
	}
}

// MoveLeft steps one character left, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft(extend bool) {
	b.move(extend, func(p Pos) Pos {
		p = b.lines.clamp(p)
		switch {
		case p.Col > 0:
			return Pos{Row: p.Row, Col: p.Col - 1}
		case p.Row > 0:
			return Pos{Row: p.Row - 1, Col: b.lines.Len(p.Row - 1)}
		}
		return p
	})
}

// MoveRight steps one character right, wrapping to the start of the next
// line. At the end of the document it stays put.
func (b *Buffer) MoveRight(extend bool) {
	b.move(extend, func(p Pos) Pos {
		p = b.lines.clamp(p)
		switch {
		case p.Col < b.lines.Len(p.Row):
			return Pos{Row: p.Row, Col: p.Col + 1}
		case p.Row < b.lines.Count()-1:
			return Pos{Row: p.Row + 1}
		}
		return p
	})
}

// MoveUp moves to the previous line keeping the desired column, which may
// exceed the new line's length until the next clamp. On the first line it
// moves to column 0.
func (b *Buffer) MoveUp(extend bool) {
	b.move(extend, func(p Pos) Pos {
		if p.Row <= 0 {
			return Pos{}
		}
		return Pos{Row: p.Row - 1, Col: p.Col}
	})
}

// MoveDown moves to the next line keeping the desired column. On the last
// line it moves to the end of the line.
func (b *Buffer) MoveDown(extend bool) {
	b.move(extend, func(p Pos) Pos {
		last := b.lines.Count() - 1
		if p.Row >= last {
			return Pos{Row: last, Col: b.lines.Len(last)}
		}
		return Pos{Row: p.Row + 1, Col: p.Col}
	})
}

// MoveToColumn moves to col on the current line, clamped to its length.
func (b *Buffer) MoveToColumn(col int, extend bool) {
	b.move(extend, func(p Pos) Pos {
		return b.lines.clamp(Pos{Row: p.Row, Col: col})
	})
}

func (b *Buffer) MoveToLineStart(extend bool) {
	b.MoveToColumn(0, extend)
}

func (b *Buffer) MoveToLineEnd(extend bool) {
	b.move(extend, func(p Pos) Pos {
		return Pos{Row: p.Row, Col: b.lines.Len(p.Row)}
	})
}

func (b *Buffer) MoveToTop(extend bool) {
	b.move(extend, func(Pos) Pos { return Pos{} })
}

func (b *Buffer) MoveToBottom(extend bool) {
	b.move(extend, func(Pos) Pos {
		last := b.lines.Count() - 1
		return Pos{Row: last, Col: b.lines.Len(last)}
	})
}

// MoveWordLeft moves to the start of the previous word. At column 0 it wraps
// to the end of the previous line.
func (b *Buffer) MoveWordLeft(extend bool) {
	b.move(extend, func(p Pos) Pos {
		p = b.lines.clamp(p)
		if p.Col == 0 && p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: b.lines.Len(p.Row - 1)}
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(b.lines.Runes(p.Row), p.Col)}
	})
}

// MoveWordRight moves past the end of the next word. At the end of a line it
// wraps to the start of the next one.
func (b *Buffer) MoveWordRight(extend bool) {
	b.move(extend, func(p Pos) Pos {
		p = b.lines.clamp(p)
		if p.Col == b.lines.Len(p.Row) && p.Row < b.lines.Count()-1 {
			return Pos{Row: p.Row + 1}
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(b.lines.Runes(p.Row), p.Col)}
	})
}

// move applies the selection rule around step: extending anchors at the
// clamped focus, a plain move drops the anchor, and an anchor left equal to
// the new focus is collapsed.
func (b *Buffer) move(extend bool, step func(Pos) Pos) {
	next := b.sel
	if extend && !next.Anchored {
		next.Focus = b.lines.clamp(next.Focus)
	}
	next.SetAnchor(extend)
	next.Focus = step(next.Focus)
	if next.Anchored {
		if b.lines.clamp(next.Focus) == next.Anchor {
			next.Focus = next.Anchor
		}
		next.FixAnchor()
	}
	b.setSelection(next)
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
