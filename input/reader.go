package input

import (
	"bytes"
	"io"
	"strings"
	"time"
)

var pasteEnd = []byte("\x1b[201~")

// DefaultEscTimeout is how long a Reader waits after a lone ESC for the rest
// of an escape sequence.
const DefaultEscTimeout = 50 * time.Millisecond

// Reader decodes events from a byte stream, usually a terminal in raw mode.
// It buffers partial sequences across reads. A Reader is not safe for
// concurrent use.
type Reader struct {
	// EscTimeout bounds the wait for more input after a lone ESC. When
	// nothing arrives in time the ESC is the Escape key. Zero or less makes
	// a lone ESC at the end of a read the Escape key at once.
	EscTimeout time.Duration

	r   io.Reader
	buf []byte
	tmp []byte
	err error

	pasting bool
	// inflight carries the result of a read that outlived an ESC wait.
	inflight chan readResult
}

type readResult struct {
	data []byte
	err  error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, tmp: make([]byte, 256), EscTimeout: DefaultEscTimeout}
}

// ReadEvent blocks until one event is available. After the underlying reader
// fails, the remaining buffered events are returned first and then the
// error (io.EOF at end of input). A lone ESC left at the end is the Escape
// key; any other escape sequence cut off by the end of input is dropped.
//
// When a wait for the rest of an escape sequence times out, the read it
// started stays pending and its bytes are delivered by the next call.
func (r *Reader) ReadEvent() (Event, error) {
	for {
		if ev, ok := r.decode(); ok {
			return ev, nil
		}
		if r.err != nil {
			if r.pasting && len(r.buf) > 0 {
				ev := pasteEvent(r.buf)
				r.buf, r.pasting = nil, false
				return ev, nil
			}
			r.buf = nil
			return Event{}, r.err
		}

		if !r.loneEsc() {
			r.fill()
			continue
		}
		if !r.fillWithin(r.EscTimeout) {
			r.buf = r.buf[:0]
			return Event{Key: KeyEscape}, nil
		}
	}
}

// loneEsc reports whether the buffer holds nothing but an ESC that may still
// start a sequence.
func (r *Reader) loneEsc() bool {
	return !r.pasting && len(r.buf) == 1 && r.buf[0] == esc
}

func (r *Reader) fill() {
	if r.inflight != nil {
		r.take(<-r.inflight)
		return
	}
	n, err := r.r.Read(r.tmp)
	r.take(readResult{data: r.tmp[:n], err: err})
}

// fillWithin reads in the background and reports false when nothing came
// back within d.
func (r *Reader) fillWithin(d time.Duration) bool {
	if r.inflight == nil {
		ch := make(chan readResult, 1)
		go func(src io.Reader) {
			p := make([]byte, 256)
			n, err := src.Read(p)
			ch <- readResult{data: p[:n], err: err}
		}(r.r)
		r.inflight = ch
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case res := <-r.inflight:
		r.take(res)
		return true
	case <-timer.C:
		return false
	}
}

func (r *Reader) take(res readResult) {
	r.inflight = nil
	r.buf = append(r.buf, res.data...)
	if res.err != nil {
		r.err = res.err
	}
}

// decode takes the next complete event off the buffer.
func (r *Reader) decode() (Event, bool) {
	for len(r.buf) > 0 {
		if r.pasting {
			i := bytes.Index(r.buf, pasteEnd)
			if i < 0 {
				return Event{}, false
			}
			ev := pasteEvent(r.buf[:i])
			r.buf = r.buf[i+len(pasteEnd):]
			r.pasting = false
			return ev, true
		}

		if r.loneEsc() && r.EscTimeout > 0 && r.err == nil {
			return Event{}, false
		}
		ev, n := next(r.buf)
		if n == 0 {
			return Event{}, false
		}
		r.buf = r.buf[n:]
		switch ev.Key {
		case keyPasteStart:
			r.pasting = true
		case KeyNone:
		default:
			return ev, true
		}
	}
	return Event{}, false
}

func pasteEvent(b []byte) Event {
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return Event{Key: KeyRune, Runes: []rune(text), Paste: true}
}
