package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Classic returns the box-drawing style: a header carrying message, a numbered
// margin and a status footer.
func Classic(message string) Style {
	return Style{
		Header: ClassicHeader{Message: message},
		Margin: ClassicMargin{Active: lipgloss.NewStyle().Bold(true)},
		Footer: ClassicFooter{},
	}
}

// ClassicHeader opens the box with one row of text.
type ClassicHeader struct {
	Message string
}

func (ClassicHeader) Rows() int { return 1 }

func (h ClassicHeader) Draw(w io.Writer, _ Document) error {
	_, err := io.WriteString(w, "      ╭─── "+h.Message)
	return err
}

// ClassicMargin draws a five digit line number and the box edge. The edge is
// heavier on the cursor row.
type ClassicMargin struct {
	Active lipgloss.Style
}

const classicDigits = 5

func (ClassicMargin) Width(Document) int { return classicDigits + 3 }

func (m ClassicMargin) DrawLine(w io.Writer, doc Document, row int) error {
	num := fmt.Sprintf("%*d", classicDigits, row+1)
	if row >= doc.LineCount() {
		num = fmt.Sprintf("%*s", classicDigits, "")
	}
	var err error
	if row == doc.Cursor().Row {
		_, err = io.WriteString(w, m.Active.Render(num)+" ┃ ")
	} else {
		_, err = io.WriteString(w, num+" │ ")
	}
	return err
}

// ClassicFooter closes the box with document statistics.
type ClassicFooter struct{}

func (ClassicFooter) Rows() int { return 1 }

func (ClassicFooter) Draw(w io.Writer, doc Document) error {
	cur := doc.Cursor()
	_, err := fmt.Fprintf(w, "      ╰─── Lines: %d ─── Chars: %d ─── Ln: %d, Col: %d",
		doc.LineCount(), doc.CharCount(), cur.Row+1, cur.Col+1)
	return err
}
