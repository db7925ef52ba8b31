package buffer

import "strings"

// Options configures a new Buffer.
type Options struct {
	// Cursor is the initial focus. It is clamped into the text.
	Cursor Pos
}

// Buffer is the editable document: text, focus and optional selection anchor.
//
// No operation fails. Positions are derived internally and clamped, so
// out-of-range requests degrade to the nearest valid position or a no-op.
type Buffer struct {
	lines   *Lines
	sel     Selection
	version uint64
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{lines: NewLines(text)}
	b.sel.Focus = b.lines.clamp(opt.Cursor)
	return b
}

// Version increases on every change to the text, focus or selection.
func (b *Buffer) Version() uint64 { return b.version }

// Text returns the whole document, including a trailing newline if present.
func (b *Buffer) Text() string { return b.lines.String() }

// Contents returns the document with a single trailing newline stripped.
func (b *Buffer) Contents() string {
	return strings.TrimSuffix(b.lines.String(), "\n")
}

// SetContents replaces the whole document and moves the focus to its end.
func (b *Buffer) SetContents(text string) {
	b.lines = NewLines(text)
	last := b.lines.Count() - 1
	b.sel = Selection{Focus: Pos{Row: last, Col: b.lines.Len(last)}}
	b.version++
}

func (b *Buffer) LineCount() int { return b.lines.Count() }

// CharCount returns the number of characters, counting each line break as one.
func (b *Buffer) CharCount() int { return b.lines.Chars() }

// Line returns row's text without its terminator, or "" when out of range.
func (b *Buffer) Line(row int) string { return b.lines.Line(row) }

// LineLen returns row's length in runes.
func (b *Buffer) LineLen(row int) int { return b.lines.Len(row) }

// FirstNonSpace returns the column of the first non-whitespace rune in row, or
// the row length when the row is blank.
func (b *Buffer) FirstNonSpace(row int) int {
	line := b.lines.Runes(row)
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}

// Focus returns the raw focus, whose column may exceed the line length.
func (b *Buffer) Focus() Pos { return b.sel.Focus }

// Cursor returns the focus clamped to the current line.
func (b *Buffer) Cursor() Pos { return b.lines.clamp(b.sel.Focus) }

// SetCursor moves the focus to p (clamped) and drops any selection.
func (b *Buffer) SetCursor(p Pos) {
	next := Selection{Focus: b.lines.clamp(p)}
	b.setSelection(next)
}

// Clamp pulls the focus column back inside its line.
func (b *Buffer) Clamp() {
	next := b.sel
	next.Focus = b.lines.clamp(next.Focus)
	next.FixAnchor()
	b.setSelection(next)
}

// Selection returns the normalized selected range.
func (b *Buffer) Selection() (Range, bool) {
	s := b.sel
	s.Focus = b.lines.clamp(s.Focus)
	return s.Range()
}

// SelectionState returns the raw focus and anchor.
func (b *Buffer) SelectionState() Selection { return b.sel }

// SetSelection anchors at anchor and moves the focus to focus, both clamped.
// Equal positions leave no selection.
func (b *Buffer) SetSelection(anchor, focus Pos) {
	next := Selection{
		Focus:    b.lines.clamp(focus),
		Anchor:   b.lines.clamp(anchor),
		Anchored: true,
	}
	next.FixAnchor()
	b.setSelection(next)
}

func (b *Buffer) ClearSelection() {
	next := b.sel
	next.Clear()
	b.setSelection(next)
}

// CurrentSelectionText returns the selected text.
func (b *Buffer) CurrentSelectionText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return b.lines.Slice(r), true
}

// Slice returns the text in r.
func (b *Buffer) Slice(r Range) string { return b.lines.Slice(r) }

func (b *Buffer) setSelection(next Selection) {
	if next == b.sel {
		return
	}
	b.sel = next
	b.version++
}
