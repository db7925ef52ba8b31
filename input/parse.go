package input

import "unicode/utf8"

const esc = 0x1b

// next decodes the first event in data and returns it with the number of
// bytes it used. n == 0 means data ends inside an escape sequence or a UTF-8
// encoding and more bytes are needed. Unknown sequences are consumed and
// reported as KeyNone.
//
// A lone ESC, or ESC followed by something that does not start a sequence,
// is the Escape key.
func next(data []byte) (ev Event, n int) {
	if len(data) == 0 {
		return Event{}, 0
	}
	b := data[0]
	switch {
	case b == esc:
		return escape(data)
	case b < 0x20 || b == 0x7f:
		return control(b), 1
	}

	if !utf8.FullRune(data) {
		return Event{}, 0
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return Event{}, 1
	}
	return Event{Key: KeyRune, Runes: []rune{r}}, size
}

// control maps C0 bytes and DEL. Carriage return and line feed are both
// Enter so that piped input ending lines with '\n' behaves like typing.
func control(b byte) Event {
	switch b {
	case '\r', '\n':
		return Event{Key: KeyEnter}
	case '\t':
		return Event{Key: KeyTab}
	case 0x7f:
		return Event{Key: KeyBackspace}
	case esc:
		return Event{Key: KeyEscape}
	case 0x00:
		return Event{Key: KeyRune, Runes: []rune{'@'}, Mod: ModCtrl}
	}
	if b <= 0x1a {
		return Event{Key: KeyRune, Runes: []rune{rune('a' + b - 1)}, Mod: ModCtrl}
	}
	// 0x1c-0x1f: ctrl+\ ctrl+] ctrl+^ ctrl+_
	return Event{Key: KeyRune, Runes: []rune{rune(b + 0x40)}, Mod: ModCtrl}
}

func escape(data []byte) (Event, int) {
	if len(data) == 1 {
		return Event{Key: KeyEscape}, 1
	}
	switch c := data[1]; {
	case c == '[':
		return csi(data)
	case c == 'O' && len(data) > 2:
		if k := ss3(data[2]); k != KeyNone {
			return Event{Key: k}, 3
		}
		return Event{Key: KeyRune, Runes: []rune{'O'}, Mod: ModAlt}, 2
	case c == esc:
		return Event{Key: KeyEscape}, 1
	case c < 0x20 || c == 0x7f:
		ev := control(c)
		ev.Mod |= ModAlt
		return ev, 2
	}

	if !utf8.FullRune(data[1:]) {
		return Event{}, 0
	}
	r, size := utf8.DecodeRune(data[1:])
	if r == utf8.RuneError && size == 1 {
		return Event{Key: KeyEscape}, 1
	}
	return Event{Key: KeyRune, Runes: []rune{r}, Mod: ModAlt}, 1 + size
}

// csi decodes ESC [ params final. Parameters are ';' separated numbers; the
// second one, when present, is the xterm modifier.
func csi(data []byte) (Event, int) {
	var params []int
	cur, has := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			return csiKey(params, b), i + 1
		default:
			// Not a sequence we know how to skip.
			return Event{Key: KeyEscape}, 1
		}
	}
	return Event{}, 0
}

func csiKey(params []int, final byte) Event {
	var mod Modifier
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}
	key := KeyNone
	switch final {
	case 'A':
		key = KeyUp
	case 'B':
		key = KeyDown
	case 'C':
		key = KeyRight
	case 'D':
		key = KeyLeft
	case 'H':
		key = KeyHome
	case 'F':
		key = KeyEnd
	case 'P', 'Q', 'R', 'S':
		key = KeyF1 + Key(final-'P')
	case 'Z':
		return Event{Key: KeyTab, Mod: ModShift}
	case '~':
		if len(params) == 0 {
			return Event{}
		}
		key = tildeKey(params[0])
	}
	if key == KeyNone {
		return Event{}
	}
	return Event{Key: key, Mod: mod}
}

func tildeKey(code int) Key {
	switch code {
	case 1, 7:
		return KeyHome
	case 2:
		return KeyInsert
	case 3:
		return KeyDelete
	case 4, 8:
		return KeyEnd
	case 5:
		return KeyPageUp
	case 6:
		return KeyPageDown
	case 11, 12, 13, 14, 15:
		return KeyF1 + Key(code-11)
	case 17, 18, 19, 20, 21:
		return KeyF6 + Key(code-17)
	case 23, 24:
		return KeyF11 + Key(code-23)
	case 200:
		return keyPasteStart
	}
	return KeyNone
}

func ss3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(b-'P')
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter, 1 + a bit set of
// shift (1), alt (2) and ctrl (4).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
