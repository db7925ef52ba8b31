package editor

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/input"
	"github.com/iw2rmb/quill/internal/grapheme"
	"github.com/iw2rmb/quill/render"
)

// SubmitMsg is sent once when the dispatcher ends the edit.
type SubmitMsg struct {
	Text string
}

// Model is a Bubble Tea component that edits a buffer with the same key
// handling as Session. It scrolls with the same planner as the terminal
// renderer and draws the cursor itself.
type Model struct {
	cfg        Config
	buf        *buffer.Buffer
	dispatcher Dispatcher
	style      render.Style

	focused bool
	done    bool

	viewport viewport.Model
	window   render.Range

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

// NewModel validates cfg and returns a focused model. Input, Output and
// Terminal are not used.
func NewModel(cfg Config) (Model, error) {
	if err := cfg.validate(false); err != nil {
		return Model{}, err
	}
	m := Model{
		cfg:        cfg,
		buf:        cfg.newBuffer(),
		dispatcher: cfg.dispatcher(),
		style:      render.Style{Header: cfg.Header, Margin: cfg.Margin, Footer: cfg.Footer},
		focused:    true,
		viewport:   viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m, nil
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Done reports whether the edit has been submitted. A done model ignores
// keys.
func (m Model) Done() bool { return m.done }

// Value returns the text without its trailing newline.
func (m Model) Value() string { return m.buf.Contents() }

// SetSize sets the outer size; header and footer rows are taken from height.
func (m Model) SetSize(width, height int) Model {
	rows := height - m.headerRows() - m.footerRows()
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(rows, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Wheel scrolling moves the window without moving the cursor.
		m.window = render.Range{Low: m.viewport.YOffset, High: m.viewport.YOffset + m.viewport.Height}
		return m, cmd
	default:
		// Hosts may mutate the buffer directly.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.done {
		return m, nil
	}
	ev, ok := eventFromKey(msg)
	if !ok {
		return m, nil
	}
	more := m.dispatcher.Dispatch(ev, m.buf)
	if m.syncFromBuffer() {
		m.followCursor()
	}
	if more {
		return m, nil
	}

	m.done = true
	m.rebuildContent()
	text := m.buf.Contents()
	return m, func() tea.Msg { return SubmitMsg{Text: text} }
}

// eventFromKey converts a Bubble Tea key to an input event. Key names are
// shared, so only rune input needs special care.
func eventFromKey(msg tea.KeyMsg) (input.Event, bool) {
	if msg.Type == tea.KeyRunes {
		ev := input.Event{Key: input.KeyRune, Runes: msg.Runes, Paste: msg.Paste}
		if msg.Alt {
			ev.Mod |= input.ModAlt
		}
		return ev, len(msg.Runes) > 0
	}
	return input.ParseName(msg.String())
}

func (m Model) View() string {
	var rows []string
	if hdr := m.style.Header; hdr != nil && hdr.Rows() > 0 {
		rows = append(rows, m.decoration(hdr.Rows(), hdr.Draw))
	}
	if m.viewport.Height > 0 {
		rows = append(rows, m.viewport.View())
	} else {
		rows = append(rows, m.content())
	}
	if ftr := m.style.Footer; ftr != nil && ftr.Rows() > 0 {
		rows = append(rows, m.decoration(ftr.Rows(), ftr.Draw))
	}
	return strings.Join(rows, "\n")
}

func (m Model) decoration(n int, draw func(io.Writer, render.Document) error) string {
	var sb strings.Builder
	if err := draw(&sb, m.buf); err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) headerRows() int {
	if m.style.Header == nil {
		return 0
	}
	return m.style.Header.Rows()
}

func (m Model) footerRows() int {
	if m.style.Footer == nil {
		return 0
	}
	return m.style.Footer.Rows()
}

// syncFromBuffer rebuilds the content when the buffer changed since the last
// call and reports whether it did.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.content())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	m.window = render.Plan(m.buf.LineCount(), m.buf.Cursor().Row, h, m.window)
	m.viewport.SetYOffset(m.window.Low)
}

func (m Model) content() string {
	n := m.buf.LineCount()
	lines := make([]string, n)
	for row := range n {
		var sb strings.Builder
		if mg := m.style.Margin; mg != nil {
			_ = mg.DrawLine(&sb, m.buf, row)
		}
		sb.WriteString(m.renderLine(row))
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

type span int

const (
	spanText span = iota
	spanSelection
	spanCursor
)

func (m Model) spanStyle(k span) func(...string) string {
	switch k {
	case spanCursor:
		return m.cfg.Style.Cursor.Render
	case spanSelection:
		return m.cfg.Style.Selection.Render
	default:
		return m.cfg.Style.Text.Render
	}
}

// renderLine styles runs of text, selection and the cursor cell. Tabs are
// expanded against the cell column so stops line up across runs.
func (m Model) renderLine(row int) string {
	runes := []rune(m.buf.Line(row))
	cur := m.buf.Cursor()
	showCursor := m.focused && !m.done && row == cur.Row
	sel, hasSel := m.buf.Selection()

	kind := func(col int) span {
		switch {
		case showCursor && col == cur.Col:
			return spanCursor
		case hasSel && sel.Contains(buffer.Pos{Row: row, Col: col}):
			return spanSelection
		}
		return spanText
	}

	var sb strings.Builder
	cell := 0
	for i := 0; i < len(runes); {
		k := kind(i)
		j := i + 1
		for j < len(runes) && kind(j) == k {
			j++
		}
		text, next := grapheme.DisplayAt(string(runes[i:j]), cell, m.cfg.TabWidth)
		sb.WriteString(m.spanStyle(k)(text))
		cell, i = next, j
	}
	if showCursor && cur.Col >= len(runes) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}
