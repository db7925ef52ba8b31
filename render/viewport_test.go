package render

import "testing"

func TestPlan_SmallDocumentShowsEverything(t *testing.T) {
	for cursor := range 4 {
		if got := Plan(4, cursor, 10, Range{Low: 2, High: 9}); got != (Range{Low: 0, High: 4}) {
			t.Fatalf("Plan(4,%d,10)=%v, want {0 4}", cursor, got)
		}
	}
}

func TestPlan_EmptyDocument(t *testing.T) {
	if got := Plan(0, 0, 5, Range{}); got != (Range{}) {
		t.Fatalf("Plan(0)=%v, want empty", got)
	}
}

func TestPlan_CursorBelowBecomesLastRow(t *testing.T) {
	got := Plan(100, 50, 10, Range{Low: 0, High: 10})
	if want := (Range{Low: 41, High: 51}); got != want {
		t.Fatalf("Plan=%v, want %v", got, want)
	}
}

func TestPlan_CursorAboveBecomesFirstRow(t *testing.T) {
	got := Plan(100, 5, 10, Range{Low: 20, High: 30})
	if want := (Range{Low: 5, High: 15}); got != want {
		t.Fatalf("Plan=%v, want %v", got, want)
	}
}

func TestPlan_FirstFrameStartsAtTop(t *testing.T) {
	if got := Plan(100, 0, 10, Range{}); got != (Range{Low: 0, High: 10}) {
		t.Fatalf("Plan=%v, want {0 10}", got)
	}
}

func TestPlan_ShrinkingDocumentRefits(t *testing.T) {
	got := Plan(12, 11, 10, Range{Low: 10, High: 20})
	if want := (Range{Low: 2, High: 12}); got != want {
		t.Fatalf("Plan=%v, want %v", got, want)
	}
}

func TestPlan_ZeroBudgetKeepsOneRow(t *testing.T) {
	if got := Plan(5, 3, 0, Range{}); got.Len() != 1 || !got.Contains(3) {
		t.Fatalf("Plan=%v, want one row holding 3", got)
	}
}

func TestPlan_Invariants(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for rows := 1; rows <= 12; rows++ {
			for low := -2; low <= n; low++ {
				for high := low; high <= min(low+rows+2, n+2); high++ {
					prev := Range{Low: low, High: high}
					for cursor := range n {
						got := Plan(n, cursor, rows, prev)
						if !got.Contains(cursor) {
							t.Fatalf("Plan(%d,%d,%d,%v)=%v misses the cursor", n, cursor, rows, prev, got)
						}
						if got.Len() != min(n, rows) || got.Low < 0 || got.High > n {
							t.Fatalf("Plan(%d,%d,%d,%v)=%v out of shape", n, cursor, rows, prev, got)
						}
						stable := n > rows && prev.Len() == rows && prev.Low >= 0 && prev.High <= n
						if stable && prev.Contains(cursor) && got != prev {
							t.Fatalf("Plan(%d,%d,%d,%v)=%v moved a valid window", n, cursor, rows, prev, got)
						}
					}
				}
			}
		}
	}
}
