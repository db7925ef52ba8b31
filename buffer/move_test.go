package buffer

import "testing"

func TestBuffer_MoveLeftRight_WrapAcrossLines(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.MoveLeft(false)
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Col: 2})
	b.MoveRight(false)
	if got := b.Cursor(); got != (Pos{Row: 1}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.MoveLeft(false)
	if got := b.Cursor(); got != (Pos{Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	b.MoveRight(false)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("right at end of buffer: cursor=%v, want (1,2)", got)
	}
}

func TestBuffer_MoveUpDown_BoundaryClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{Cursor: Pos{Row: 0, Col: 3}})

	b.MoveUp(false)
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("up on first line: cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Row: 2, Col: 1})
	b.MoveDown(false)
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 5}) {
		t.Fatalf("down on last line: cursor=%v, want (2,5)", got)
	}
}

func TestBuffer_MoveUpDown_KeepsDesiredColumn(t *testing.T) {
	b := New("hello\nw\nworld", Options{Cursor: Pos{Row: 2, Col: 4}})

	b.MoveUp(false)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
	b.MoveUp(false)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 4}) {
		t.Fatalf("cursor=%v, want (0,4)", got)
	}
}

func TestBuffer_MoveLineAndDoc(t *testing.T) {
	b := New("a\nbc", Options{Cursor: Pos{Row: 1, Col: 1}})

	b.MoveToLineEnd(false)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	b.MoveToLineStart(false)
	if got := b.Cursor(); got != (Pos{Row: 1}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}
	b.MoveToTop(false)
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
	b.MoveToBottom(false)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	b.MoveToColumn(99, false)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
}

func TestBuffer_MoveDescriptor(t *testing.T) {
	b := New("foo bar\nbaz", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Col: 3}) {
		t.Fatalf("cursor=%v, want (0,3)", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd, Extend: true})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 3}) {
		t.Fatalf("cursor=%v, want (1,3)", got)
	}
	if got, _ := b.CurrentSelectionText(); got != " bar\nbaz" {
		t.Fatalf("selection=%q, want %q", got, " bar\nbaz")
	}
	b.Move(Move{Unit: MoveRune, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 1}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}
}

func TestBuffer_MoveWord_Boundaries(t *testing.T) {
	b := New("  foo  bar\nnext", Options{Cursor: Pos{Col: 10}})

	b.MoveWordLeft(false)
	if got := b.Cursor(); got != (Pos{Col: 7}) {
		t.Fatalf("cursor=%v, want (0,7)", got)
	}
	b.MoveWordLeft(false)
	if got := b.Cursor(); got != (Pos{Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
	b.MoveWordRight(false)
	if got := b.Cursor(); got != (Pos{Col: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}

	b.SetCursor(Pos{Col: 10})
	b.MoveWordRight(false)
	if got := b.Cursor(); got != (Pos{Row: 1}) {
		t.Fatalf("word right at EOL: cursor=%v, want (1,0)", got)
	}
	b.MoveWordLeft(false)
	if got := b.Cursor(); got != (Pos{Col: 10}) {
		t.Fatalf("word left at SOL: cursor=%v, want (0,10)", got)
	}
}

func TestBuffer_Move_ExtendSetsAnchorAndPlainMoveDropsIt(t *testing.T) {
	b := New("abc", Options{Cursor: Pos{Col: 1}})

	b.MoveRight(true)
	b.MoveRight(true)
	st := b.SelectionState()
	if !st.Anchored || st.Anchor != (Pos{Col: 1}) || st.Focus != (Pos{Col: 3}) {
		t.Fatalf("selection=%+v, want anchor (0,1) focus (0,3)", st)
	}

	b.MoveLeft(false)
	if b.SelectionState().Anchored {
		t.Fatalf("plain move must drop the anchor")
	}
}

func TestBuffer_Move_ReturningToAnchorCollapses(t *testing.T) {
	b := New("abc\nd", Options{Cursor: Pos{Col: 2}})

	b.MoveRight(true)
	b.MoveLeft(true)
	if b.SelectionState().Anchored {
		t.Fatalf("focus back on anchor must collapse the selection")
	}

	// Vertical moves compare the clamped focus against the anchor.
	b.SetCursor(Pos{Row: 1, Col: 1})
	b.MoveUp(true)
	b.MoveDown(true)
	if b.SelectionState().Anchored {
		t.Fatalf("returning to the anchor row must collapse the selection")
	}
}

func TestBuffer_MoveNoopKeepsVersion(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.MoveLeft(false)
	b.MoveUp(false)
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}
