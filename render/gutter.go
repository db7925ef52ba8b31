package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// LineNumbers is a margin of right-aligned 1-based line numbers followed by
// one blank column. Its width follows the digit count of the last line.
type LineNumbers struct {
	Style  lipgloss.Style
	Active lipgloss.Style
}

// DefaultLineNumbers returns dim numbers with a bright cursor row.
func DefaultLineNumbers() LineNumbers {
	return LineNumbers{
		Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Active: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	}
}

func (g LineNumbers) Width(doc Document) int {
	return digits(doc.LineCount()) + 1
}

func (g LineNumbers) DrawLine(w io.Writer, doc Document, row int) error {
	st := g.Style
	if row == doc.Cursor().Row {
		st = g.Active
	}
	num := fmt.Sprintf("%*d", digits(doc.LineCount()), row+1)
	_, err := io.WriteString(w, st.Render(num)+" ")
	return err
}

func digits(n int) int {
	return len(strconv.Itoa(max(n, 1)))
}
