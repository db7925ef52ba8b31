package buffer

import (
	"math/rand"
	"testing"
)

func TestNew_ClampsInitialCursor(t *testing.T) {
	b := New("ab\ncd", Options{Cursor: Pos{Row: 9, Col: 9}})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestBuffer_CountsAndLines(t *testing.T) {
	b := New("hello\nwörld\n", Options{})
	if got := b.LineCount(); got != 3 {
		t.Fatalf("lines=%d, want 3", got)
	}
	if got := b.CharCount(); got != 12 {
		t.Fatalf("chars=%d, want 12", got)
	}
	if got := b.Line(1); got != "wörld" {
		t.Fatalf("line(1)=%q, want %q", got, "wörld")
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("line(7)=%q, want empty", got)
	}
}

func TestBuffer_ContentsStripsOneTrailingNewline(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "", want: ""},
		{text: "a", want: "a"},
		{text: "a\n", want: "a"},
		{text: "a\n\n", want: "a\n"},
	}
	for _, tc := range cases {
		if got := New(tc.text, Options{}).Contents(); got != tc.want {
			t.Fatalf("Contents(%q)=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBuffer_SetSelectionAndText(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	b.SetSelection(Pos{Row: 2, Col: 2}, Pos{Row: 0, Col: 1})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 2, Col: 2}}); r != want {
		t.Fatalf("range=%v, want %v", r, want)
	}
	got, ok := b.CurrentSelectionText()
	if !ok || got != "ne\ntwo\nth" {
		t.Fatalf("selection text=%q ok=%v, want %q", got, ok, "ne\ntwo\nth")
	}

	b.ClearSelection()
	if _, ok := b.CurrentSelectionText(); ok {
		t.Fatalf("expected no selection after clear")
	}
}

func TestBuffer_SetSelection_EqualEndsCollapse(t *testing.T) {
	b := New("abc", Options{})
	b.SetSelection(Pos{Col: 2}, Pos{Col: 2})
	if b.SelectionState().Anchored {
		t.Fatalf("zero-length selection must not keep an anchor")
	}
}

func TestBuffer_SetContentsMovesToEnd(t *testing.T) {
	b := New("x", Options{})
	v := b.Version()
	b.SetContents("a\nbc")
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.Version() == v {
		t.Fatalf("version should change")
	}
}

func TestBuffer_FirstNonSpace(t *testing.T) {
	b := New("   x\n\t y\n   ", Options{})
	for row, want := range []int{3, 2, 3} {
		if got := b.FirstNonSpace(row); got != want {
			t.Fatalf("FirstNonSpace(%d)=%d, want %d", row, got, want)
		}
	}
}

func TestBuffer_ClampInvariant_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New("alpha\nbe\n\ngamma delta\nz", Options{})

	ops := []func(){
		func() { b.MoveLeft(rng.Intn(2) == 0) },
		func() { b.MoveRight(rng.Intn(2) == 0) },
		func() { b.MoveUp(rng.Intn(2) == 0) },
		func() { b.MoveDown(rng.Intn(2) == 0) },
		func() { b.MoveWordLeft(false) },
		func() { b.MoveWordRight(true) },
		func() { b.MoveToColumn(rng.Intn(12), rng.Intn(2) == 0) },
		func() { b.MoveToTop(false) },
		func() { b.MoveToBottom(true) },
		func() { b.InsertChar('q') },
		func() { b.InsertString("x\ny") },
		func() { b.InsertNewline() },
		func() { b.DeleteBackward() },
		func() { b.DeleteForward() },
		func() { b.Unindent(4) },
	}

	for i := 0; i < 5000; i++ {
		ops[rng.Intn(len(ops))]()

		focus := b.Focus()
		if focus.Row < 0 || focus.Row >= b.LineCount() {
			t.Fatalf("step %d: row %d outside [0,%d)", i, focus.Row, b.LineCount())
		}
		b.Clamp()
		cur := b.Cursor()
		if cur.Col < 0 || cur.Col > b.LineLen(cur.Row) {
			t.Fatalf("step %d: col %d outside line of length %d", i, cur.Col, b.LineLen(cur.Row))
		}
		sel := b.SelectionState()
		if sel.Anchored && sel.Anchor == sel.Focus {
			t.Fatalf("step %d: collapsed selection kept its anchor", i)
		}
	}
}
