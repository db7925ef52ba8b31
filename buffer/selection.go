package buffer

// Selection is the cursor (Focus) plus an optional fixed end (Anchor).
//
// Anchor is meaningful only while Anchored is set. An anchor equal to the
// focus is never kept: a zero-length selection collapses to a plain cursor.
type Selection struct {
	Focus    Pos
	Anchor   Pos
	Anchored bool
}

// Range returns the normalized selected span. ok is false when nothing is
// selected.
func (s Selection) Range() (r Range, ok bool) {
	if !s.Anchored || s.Anchor == s.Focus {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: s.Anchor, End: s.Focus}), true
}

// SetAnchor prepares s for a move: extending starts a selection at the focus
// when none exists, while a plain move drops the anchor.
func (s *Selection) SetAnchor(extend bool) {
	switch {
	case extend && !s.Anchored:
		s.Anchor = s.Focus
		s.Anchored = true
	case !extend:
		s.Anchored = false
		s.Anchor = Pos{}
	}
}

// FixAnchor collapses a selection whose anchor equals its focus.
func (s *Selection) FixAnchor() {
	if s.Anchored && s.Anchor == s.Focus {
		s.Anchored = false
		s.Anchor = Pos{}
	}
}

// Clear drops the anchor.
func (s *Selection) Clear() {
	s.Anchored = false
	s.Anchor = Pos{}
}
