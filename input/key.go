package input

import "strings"

// Key identifies a non-printable key. Printable input is KeyRune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// keyPasteStart marks the start of a bracketed paste; Reader never
	// returns it.
	keyPasteStart
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift

	ModNone Modifier = 0
)

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// Event is one key press or one bracketed paste.
type Event struct {
	Key   Key
	Runes []rune
	Mod   Modifier
	// Paste is set for text delivered as a bracketed paste. Runes holds the
	// whole pasted text with line breaks as '\n'.
	Paste bool
}

// String returns the Bubble Tea style name of the event: modifiers in the
// order alt, ctrl, shift, then the key name or the typed runes. A paste is
// shown in brackets.
func (e Event) String() string {
	if e.Paste {
		return "[" + string(e.Runes) + "]"
	}
	var sb strings.Builder
	if e.Mod.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if e.Mod.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if e.Mod.Has(ModShift) {
		sb.WriteString("shift+")
	}
	if e.Key == KeyRune {
		sb.WriteString(string(e.Runes))
	} else {
		sb.WriteString(keyNames[e.Key])
	}
	return sb.String()
}

// Text returns the runes to insert for a plain printable key or a paste, and
// false for anything else.
func (e Event) Text() (string, bool) {
	if e.Key != KeyRune || len(e.Runes) == 0 {
		return "", false
	}
	if !e.Paste && e.Mod&(ModCtrl|ModAlt) != 0 {
		return "", false
	}
	return string(e.Runes), true
}

// ParseName is the inverse of Event.String for single keys: "ctrl+shift+up",
// "alt+enter", "a", "ctrl+c". "space" is accepted for " ".
func ParseName(name string) (Event, bool) {
	var ev Event
	for {
		switch {
		case strings.HasPrefix(name, "alt+") && len(name) > 4:
			ev.Mod |= ModAlt
			name = name[4:]
			continue
		case strings.HasPrefix(name, "ctrl+") && len(name) > 5:
			ev.Mod |= ModCtrl
			name = name[5:]
			continue
		case strings.HasPrefix(name, "shift+") && len(name) > 6:
			ev.Mod |= ModShift
			name = name[6:]
			continue
		}
		break
	}

	if k, ok := namedKeys[name]; ok {
		ev.Key = k
		return ev, true
	}
	if name == "space" {
		name = " "
	}
	if r := []rune(name); len(r) == 1 {
		ev.Key, ev.Runes = KeyRune, r
		return ev, true
	}
	return Event{}, false
}
