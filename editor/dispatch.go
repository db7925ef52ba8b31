package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/input"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// Dispatcher applies one input event to the buffer. It returns false to end
// the session.
type Dispatcher interface {
	Dispatch(ev input.Event, b *buffer.Buffer) bool
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(ev input.Event, b *buffer.Buffer) bool

func (f DispatchFunc) Dispatch(ev input.Event, b *buffer.Buffer) bool { return f(ev, b) }

// KeyDispatcher is the default Dispatcher. It matches events against a
// KeyMap; unbound printable keys insert themselves.
type KeyDispatcher struct {
	KeyMap KeyMap
	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard
	// TabWidth is the indent unit. Zero means 4.
	TabWidth int
}

func NewKeyDispatcher(km KeyMap, cb Clipboard) *KeyDispatcher {
	return &KeyDispatcher{KeyMap: km, Clipboard: cb, TabWidth: grapheme.DefaultTabWidth}
}

func (d *KeyDispatcher) Dispatch(ev input.Event, b *buffer.Buffer) bool {
	// Pasted text is inserted literally and never triggers bindings.
	if ev.Paste {
		if text, ok := ev.Text(); ok {
			b.InsertString(text)
		}
		return true
	}

	km := d.KeyMap
	switch {
	case key.Matches(ev, km.Stop):
		return false
	case key.Matches(ev, km.Enter):
		cur := b.Cursor()
		if cur.Row == b.LineCount()-1 && b.LineLen(cur.Row) == 0 {
			return false
		}
		b.InsertNewline()
	case key.Matches(ev, km.Newline):
		b.InsertNewline()

	case key.Matches(ev, km.Left):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(ev, km.Right):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(ev, km.Up):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(ev, km.Down):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(ev, km.ShiftLeft):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(ev, km.ShiftRight):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(ev, km.ShiftUp):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(ev, km.ShiftDown):
		b.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(ev, km.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(ev, km.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(ev, km.ShiftWordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(ev, km.ShiftWordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight, Extend: true})

	case key.Matches(ev, km.Home):
		home(b, false)
	case key.Matches(ev, km.ShiftHome):
		home(b, true)
	case key.Matches(ev, km.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(ev, km.ShiftEnd):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})

	case key.Matches(ev, km.Top):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(ev, km.Bottom):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(ev, km.ShiftTop):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome, Extend: true})
	case key.Matches(ev, km.ShiftBottom):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd, Extend: true})

	case key.Matches(ev, km.Backspace):
		b.DeleteBackward()
	case key.Matches(ev, km.Delete):
		b.DeleteForward()
	case key.Matches(ev, km.Indent):
		tab := d.tabWidth()
		b.InsertString(strings.Repeat(" ", tab-b.Cursor().Col%tab))
	case key.Matches(ev, km.Unindent):
		b.Unindent(d.tabWidth())

	case key.Matches(ev, km.Copy):
		d.copy(b)
	case key.Matches(ev, km.Cut):
		d.cut(b)
	case key.Matches(ev, km.Paste):
		d.paste(b)

	default:
		if text, ok := ev.Text(); ok {
			b.InsertString(text)
		}
	}
	return true
}

func (d *KeyDispatcher) tabWidth() int {
	if d.TabWidth <= 0 {
		return grapheme.DefaultTabWidth
	}
	return d.TabWidth
}

// home goes to the first non-space column, or to column 0 when already
// there.
func home(b *buffer.Buffer, extend bool) {
	cur := b.Cursor()
	indent := b.FirstNonSpace(cur.Row)
	if cur.Col == indent {
		indent = 0
	}
	b.MoveToColumn(indent, extend)
}

// Clipboard failures are ignored: the edit still happens, the clipboard
// just does not see it.

func (d *KeyDispatcher) copy(b *buffer.Buffer) {
	if d.Clipboard == nil {
		return
	}
	text, ok := b.CurrentSelectionText()
	if !ok {
		text = b.Line(b.Cursor().Row)
	}
	_ = d.Clipboard.WriteText(text)
}

// cut removes the selection, or the whole current line including its line
// break when nothing is selected.
func (d *KeyDispatcher) cut(b *buffer.Buffer) {
	if d.Clipboard == nil {
		return
	}
	if text, ok := b.CurrentSelectionText(); ok {
		_ = d.Clipboard.WriteText(text)
		b.DeleteSelection()
		return
	}
	_ = d.Clipboard.WriteText(b.DeleteLine(b.Cursor().Row) + "\n")
}

func (d *KeyDispatcher) paste(b *buffer.Buffer) {
	if d.Clipboard == nil {
		return
	}
	s, err := d.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.InsertString(s)
}
