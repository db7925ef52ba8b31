package main

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/editor"
)

type teaModel struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	text   string
	done   bool
}

func (m teaModel) Init() tea.Cmd { return m.editor.Init() }

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "alt+?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case editor.SubmitMsg:
		m.text, m.done = msg.Text, true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m teaModel) View() string {
	if m.done {
		return ""
	}
	return m.editor.View() + "\n" + m.help.View(m.keys)
}

// runTea edits cfg in a Bubble Tea program and returns the submitted text,
// or the text at the time the program ended.
func runTea(cfg editor.Config, in io.Reader, out io.Writer) (string, error) {
	ed, err := editor.NewModel(cfg)
	if err != nil {
		return "", err
	}
	m := teaModel{editor: ed, help: help.New(), keys: cfg.KeyMap}
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return "", err
	}
	fm := final.(teaModel)
	if !fm.done {
		return fm.editor.Value(), nil
	}
	return fm.text, nil
}
