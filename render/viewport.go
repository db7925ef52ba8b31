package render

// Range is the half-open span of document rows drawn in a frame.
type Range struct {
	Low, High int
}

func (r Range) Len() int { return r.High - r.Low }

// Contains reports whether row is drawn.
func (r Range) Contains(row int) bool { return r.Low <= row && row < r.High }

// Plan picks the rows to draw for n lines, the cursor on row cursor and a
// budget of rows, given the range drawn last frame (zero for the first).
//
// The window only moves when the cursor would leave it: below the previous
// window the cursor becomes the last row, above it the first row. The result
// always holds min(n, rows) rows and contains the cursor.
func Plan(n, cursor, rows int, prev Range) Range {
	if n <= 0 {
		return Range{}
	}
	rows = max(rows, 1)
	cursor = min(max(cursor, 0), n-1)
	if n <= rows {
		return Range{Low: 0, High: n}
	}

	next := prev
	switch {
	case cursor >= prev.High:
		next = Range{Low: cursor - rows + 1, High: cursor + 1}
	case cursor < prev.Low:
		next = Range{Low: cursor, High: cursor + rows}
	}

	// Keep exactly rows rows inside [0, n). A window that got short (the
	// document grew) or hangs past the end (it shrank) is re-fitted around
	// its top edge without dropping the cursor.
	next.High = min(next.High, n)
	next.Low = max(next.Low, 0)
	if next.Len() != rows {
		next.High = min(next.Low+rows, n)
		next.Low = next.High - rows
	}
	if cursor >= next.High {
		next = Range{Low: cursor - rows + 1, High: cursor + 1}
	}
	if cursor < next.Low {
		next = Range{Low: cursor, High: cursor + rows}
	}
	return next
}
