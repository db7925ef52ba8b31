package buffer

import (
	"sort"
	"strings"
)

// Lines is a line-addressable rune sequence.
//
// Every row except the last is implicitly terminated by '\n', so row text is
// always the trimmed line and there is at least one (possibly empty) row.
type Lines struct {
	rows [][]rune

	// starts[i] is the char offset of row i. Rebuilt lazily after edits.
	starts []int
}

// NewLines splits text into rows. "\r\n" and lone '\r' terminate rows too.
func NewLines(text string) *Lines {
	return &Lines{rows: splitLines(normalizeNewlines(text))}
}

func (l *Lines) Count() int { return len(l.rows) }

// Len returns the rune length of row, or 0 when row is out of range.
func (l *Lines) Len(row int) int {
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return len(l.rows[row])
}

// Line returns the text of row without its terminator.
func (l *Lines) Line(row int) string {
	if row < 0 || row >= len(l.rows) {
		return ""
	}
	return string(l.rows[row])
}

// Runes returns row's storage. Callers must not modify it.
func (l *Lines) Runes(row int) []rune {
	if row < 0 || row >= len(l.rows) {
		return nil
	}
	return l.rows[row]
}

// Chars returns the number of characters, counting each row break as one.
func (l *Lines) Chars() int {
	l.index()
	last := len(l.rows) - 1
	return l.starts[last] + len(l.rows[last])
}

// LineStart returns the char offset at which row begins.
func (l *Lines) LineStart(row int) int {
	l.index()
	row = clampInt(row, 0, len(l.rows)-1)
	return l.starts[row]
}

// LineAt returns the row containing char offset off. An offset that points at
// a row break belongs to the row the break terminates.
func (l *Lines) LineAt(off int) int {
	l.index()
	if off <= 0 {
		return 0
	}
	// First row starting after off, minus one.
	i := sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > off })
	return i - 1
}

func (l *Lines) index() {
	if l.starts != nil {
		return
	}
	starts := make([]int, len(l.rows))
	off := 0
	for i, r := range l.rows {
		starts[i] = off
		off += len(r) + 1
	}
	l.starts = starts
}

func (l *Lines) clamp(p Pos) Pos {
	return ClampPos(p, len(l.rows), l.Len)
}

// Insert inserts text at p (clamped) and returns the position just after it.
func (l *Lines) Insert(p Pos, text string) Pos {
	p = l.clamp(p)
	text = normalizeNewlines(text)
	if text == "" {
		return p
	}

	parts := strings.Split(text, "\n")
	line := l.rows[p.Row]
	suffix := append([]rune(nil), line[p.Col:]...)

	if len(parts) == 1 {
		ins := []rune(parts[0])
		next := make([]rune, 0, len(line)+len(ins))
		next = append(next, line[:p.Col]...)
		next = append(next, ins...)
		next = append(next, suffix...)
		l.rows[p.Row] = next
		l.starts = nil
		return Pos{Row: p.Row, Col: p.Col + len(ins)}
	}

	repl := make([][]rune, 0, len(parts))
	first := append(append([]rune(nil), line[:p.Col]...), []rune(parts[0])...)
	repl = append(repl, first)
	for _, mid := range parts[1 : len(parts)-1] {
		repl = append(repl, []rune(mid))
	}
	tail := []rune(parts[len(parts)-1])
	repl = append(repl, append(append([]rune(nil), tail...), suffix...))

	l.splice(p.Row, p.Row+1, repl)
	return Pos{Row: p.Row + len(parts) - 1, Col: len(tail)}
}

// Remove deletes the normalized range r (clamped) and returns the removed text.
func (l *Lines) Remove(r Range) string {
	r = NormalizeRange(Range{Start: l.clamp(r.Start), End: l.clamp(r.End)})
	if r.IsEmpty() {
		return ""
	}
	removed := l.Slice(r)

	start, end := r.Start, r.End
	joined := make([]rune, 0, start.Col+len(l.rows[end.Row])-end.Col)
	joined = append(joined, l.rows[start.Row][:start.Col]...)
	joined = append(joined, l.rows[end.Row][end.Col:]...)
	l.splice(start.Row, end.Row+1, [][]rune{joined})
	return removed
}

// Slice returns the text in the normalized range r (clamped).
func (l *Lines) Slice(r Range) string {
	r = NormalizeRange(Range{Start: l.clamp(r.Start), End: l.clamp(r.End)})
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(l.rows[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(l.rows[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l.rows[row][from:to]))
	}
	return sb.String()
}

// String joins all rows with '\n'.
func (l *Lines) String() string {
	var sb strings.Builder
	for i, line := range l.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// splice replaces rows [from, to) with repl.
func (l *Lines) splice(from, to int, repl [][]rune) {
	out := make([][]rune, 0, len(l.rows)-(to-from)+len(repl))
	out = append(out, l.rows[:from]...)
	out = append(out, repl...)
	out = append(out, l.rows[to:]...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}
	l.rows = out
	l.starts = nil
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
