package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultAccent is the marker colour of the fancy style.
const DefaultAccent = "#5faf5f"

// Palette holds the block styles of the fancy style.
type Palette struct {
	Block  lipgloss.Style
	Active lipgloss.Style
	Marker lipgloss.Style
}

// NewPalette derives the fancy shades from one accent colour: line numbers
// sit on dark grey, the cursor row on grey tinted towards the accent. An
// invalid accent falls back to DefaultAccent.
func NewPalette(r *lipgloss.Renderer, accent string) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	acc, err := colorful.Hex(accent)
	if err != nil {
		acc, _ = colorful.Hex(DefaultAccent)
	}
	grey := colorful.Color{R: 0.35, G: 0.35, B: 0.35}
	black := lipgloss.Color("#000000")

	return Palette{
		Block:  r.NewStyle().Foreground(black).Background(lipgloss.Color(grey.Hex())),
		Active: r.NewStyle().Foreground(black).Background(lipgloss.Color(grey.BlendLab(acc, 0.35).Clamped().Hex())),
		Marker: r.NewStyle().Foreground(black).Background(lipgloss.Color(acc.Hex())),
	}
}

// Fancy returns the coloured block style. The header row is only shown when
// message is not empty.
func Fancy(message string) Style {
	return FancyPalette(message, NewPalette(nil, DefaultAccent))
}

// FancyPalette is Fancy with the shades of p.
func FancyPalette(message string, p Palette) Style {
	return Style{
		Header: FancyHeader{Message: message, Palette: p},
		Margin: FancyMargin{Palette: p},
		Footer: FancyFooter{Palette: p},
	}
}

type FancyHeader struct {
	Message string
	Palette Palette
}

func (h FancyHeader) Rows() int {
	if h.Message == "" {
		return 0
	}
	return 1
}

func (h FancyHeader) Draw(w io.Writer, _ Document) error {
	if h.Message == "" {
		return nil
	}
	_, err := io.WriteString(w, h.Palette.Block.Render("       ")+" "+h.Message)
	return err
}

// FancyMargin is nine cells wide. The empty last line is marked with "▶".
type FancyMargin struct {
	Palette Palette
}

func (FancyMargin) Width(Document) int { return 9 }

func (m FancyMargin) DrawLine(w io.Writer, doc Document, row int) error {
	n := doc.LineCount()
	cursor := row == doc.Cursor().Row

	var s string
	switch {
	case row >= n:
		s = m.Palette.Block.Render("       ") + "  "
	case row == n-1 && doc.Line(row) == "" && cursor:
		s = m.Palette.Marker.Render("      ▶ ") + " "
	case row == n-1 && doc.Line(row) == "":
		s = m.Palette.Marker.Render("     ▶ ") + "  "
	case cursor:
		s = m.Palette.Active.Render(fmt.Sprintf("  %5d ", row+1)) + " "
	default:
		s = m.Palette.Block.Render(fmt.Sprintf(" %5d ", row+1)) + "  "
	}
	_, err := io.WriteString(w, s)
	return err
}

type FancyFooter struct {
	Palette Palette
}

func (FancyFooter) Rows() int { return 1 }

func (f FancyFooter) Draw(w io.Writer, doc Document) error {
	cur := doc.Cursor()
	_, err := fmt.Fprintf(w, "%s Lines: %3d  Chars: %3d  Ln %d, Col %d ",
		f.Palette.Block.Render("  info "), doc.LineCount(), doc.CharCount(), cur.Row+1, cur.Col+1)
	return err
}
