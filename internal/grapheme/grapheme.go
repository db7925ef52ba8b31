// Package grapheme measures and sanitizes line text for terminal display.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop used when callers pass a non-positive width.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the terminal cell width of one grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the cell width of s once tabs are expanded from column 0.
func Width(s string, tabWidth int) int {
	return advance(s, 0, tabWidth)
}

// Prefix returns the cell width of the first n runes of line.
func Prefix(line []rune, n, tabWidth int) int {
	if n > len(line) {
		n = len(line)
	}
	if n <= 0 {
		return 0
	}
	return Width(string(line[:n]), tabWidth)
}

func advance(s string, start, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	col := start
	for _, c := range Split(s) {
		switch {
		case c == "\t":
			col += tabWidth - col%tabWidth
		case isControl(c):
			col += runewidth.RuneWidth(unicode.ReplacementChar)
		default:
			col += ClusterWidth(c)
		}
	}
	return col - start
}

// Display expands tabs to spaces and replaces control characters with
// U+FFFD so the result occupies exactly Width(s) cells.
func Display(s string, tabWidth int) string {
	out, _ := DisplayAt(s, 0, tabWidth)
	return out
}

// DisplayAt is Display for text that starts at cell col, so tab stops line up
// with the rest of the row. It also returns the cell column after s.
func DisplayAt(s string, col, tabWidth int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsFunc(s, needsRewrite) {
		return s, col + advance(s, col, tabWidth)
	}
	var sb strings.Builder
	for _, c := range Split(s) {
		switch {
		case c == "\t":
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case isControl(c):
			sb.WriteRune(unicode.ReplacementChar)
			col += runewidth.RuneWidth(unicode.ReplacementChar)
		default:
			sb.WriteString(c)
			col += ClusterWidth(c)
		}
	}
	return sb.String(), col
}

func needsRewrite(r rune) bool {
	return r == '\t' || unicode.IsControl(r)
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsSpace reports whether r separates words.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}
