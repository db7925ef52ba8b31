package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/render"
)

// Style controls how text is drawn. Line decorations are configured through
// Config.Header, Config.Margin and Config.Footer.
//
// The zero Style draws plain text with no visible selection.
type Style struct {
	// Text is used by Model. A Session writes text unstyled.
	Text      lipgloss.Style
	Selection lipgloss.Style
	// Cursor is used by Model, which draws its own cursor. A Session uses
	// the terminal cursor.
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}

// Preset returns the decorations named by name: "classic", "fancy" or
// "plain". message is shown in the header of styles that have one.
func Preset(name, message string) (render.Style, bool) {
	switch name {
	case "classic":
		return render.Classic(message), true
	case "fancy":
		return render.Fancy(message), true
	case "numbers":
		return render.Style{Margin: render.DefaultLineNumbers()}, true
	case "plain", "":
		return render.Style{}, true
	}
	return render.Style{}, false
}
