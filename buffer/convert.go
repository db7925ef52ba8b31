package buffer

// OffsetClampMode controls how out-of-range offsets and positions are handled
// by the conversion helpers.
type OffsetClampMode uint8

const (
	// OffsetError rejects out-of-range input.
	OffsetError OffsetClampMode = iota
	// OffsetClamp pulls out-of-range input to the nearest valid value.
	OffsetClamp
)

// PosFromCharOffset converts a char offset into a position. A line break
// counts as one char belonging to the line it terminates.
func (b *Buffer) PosFromCharOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.lines.Chars(), mode)
	if !ok {
		return Pos{}, false
	}
	row := b.lines.LineAt(off)
	return Pos{Row: row, Col: min(off-b.lines.LineStart(row), b.lines.Len(row))}, true
}

// CharOffsetFromPos converts a position into a char offset.
func (b *Buffer) CharOffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.lines.clamp(p)
	if clamped != p && mode == OffsetError {
		return 0, false
	}
	return b.lines.LineStart(clamped.Row) + clamped.Col, true
}

// LineStart returns the char offset at which row begins.
func (b *Buffer) LineStart(row int) int { return b.lines.LineStart(row) }

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	}
	return 0, false
}
