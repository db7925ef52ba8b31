package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// spyTerminal emulates a screen grid and records every operation. Moves
// clamp at the screen edges the way xterm does; '\n' on the last row scrolls.
type spyTerminal struct {
	cols, rows int
	cells      [][]rune
	row, col   int

	ops      []string
	scrolled int
	overflow bool

	sizeErr error
	fail    map[string]error
}

const wideTail = rune(0)

func newSpy(cols, rows int) *spyTerminal {
	t := &spyTerminal{cols: cols, rows: rows}
	t.cells = make([][]rune, rows)
	for i := range t.cells {
		t.cells[i] = t.blank()
	}
	return t
}

func (t *spyTerminal) blank() []rune {
	row := make([]rune, t.cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func (t *spyTerminal) record(op string, arg any) error {
	if arg != nil {
		t.ops = append(t.ops, fmt.Sprintf("%s:%v", op, arg))
	} else {
		t.ops = append(t.ops, op)
	}
	return t.fail[op]
}

func (t *spyTerminal) Write(s string) error {
	if err := t.record("write", s); err != nil {
		return err
	}
	for _, r := range ansi.Strip(s) {
		switch r {
		case '\r':
			t.col = 0
		case '\n':
			if t.row == t.rows-1 {
				t.cells = append(t.cells[1:], t.blank())
				t.scrolled++
			} else {
				t.row++
			}
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if t.col+w > t.cols {
				t.overflow = true
				t.col = t.cols - w
			}
			t.cells[t.row][t.col] = r
			if w == 2 {
				t.cells[t.row][t.col+1] = wideTail
			}
			t.col = min(t.col+w, t.cols-1)
		}
	}
	return nil
}

func (t *spyTerminal) MoveUp(n int) error {
	t.row = max(t.row-n, 0)
	return t.record("up", n)
}

func (t *spyTerminal) MoveDown(n int) error {
	t.row = min(t.row+n, t.rows-1)
	return t.record("down", n)
}

func (t *spyTerminal) MoveLeft(n int) error {
	t.col = max(t.col-n, 0)
	return t.record("left", n)
}

func (t *spyTerminal) MoveRight(n int) error {
	t.col = min(t.col+n, t.cols-1)
	return t.record("right", n)
}

func (t *spyTerminal) MoveToColumn(col int) error {
	t.col = min(max(col, 0), t.cols-1)
	return t.record("col", col)
}

func (t *spyTerminal) ClearLine() error {
	t.cells[t.row] = t.blank()
	return t.record("clearline", nil)
}

func (t *spyTerminal) ClearToEnd() error {
	for c := t.col; c < t.cols; c++ {
		t.cells[t.row][c] = ' '
	}
	for r := t.row + 1; r < t.rows; r++ {
		t.cells[r] = t.blank()
	}
	return t.record("cleartoend", nil)
}

func (t *spyTerminal) Size() (int, int, error) {
	if t.sizeErr != nil {
		return 0, 0, t.sizeErr
	}
	return t.cols, t.rows, nil
}

func (t *spyTerminal) Flush() error { return t.record("flush", nil) }

// screen returns the rows of the grid with trailing blanks trimmed.
func (t *spyTerminal) screen() []string {
	out := make([]string, t.rows)
	for i, row := range t.cells {
		var sb strings.Builder
		for _, r := range row {
			if r != wideTail {
				sb.WriteRune(r)
			}
		}
		out[i] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

func (t *spyTerminal) count(op string) int {
	n := 0
	for _, o := range t.ops {
		if o == op || strings.HasPrefix(o, op+":") {
			n++
		}
	}
	return n
}

func (t *spyTerminal) reset() { t.ops = nil }
