package editor

import (
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/input"
	"github.com/iw2rmb/quill/internal/debug"
)

// DebugDispatcher types a dump of every event into the buffer instead of
// editing. It is meant for finding out what a terminal sends. Escape still
// ends the session.
type DebugDispatcher struct{}

func (DebugDispatcher) Dispatch(ev input.Event, b *buffer.Buffer) bool {
	if ev.Key == input.KeyEscape && ev.Mod == input.ModNone {
		return false
	}
	b.InsertString(ev.String() + " " + debug.Sdump(ev) + "\n")
	return true
}
