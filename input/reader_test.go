package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

// chunks returns one chunk per Read call.
type chunks []string

func (c *chunks) Read(p []byte) (int, error) {
	if len(*c) == 0 {
		return 0, io.EOF
	}
	n := copy(p, (*c)[0])
	(*c)[0] = (*c)[0][n:]
	if (*c)[0] == "" {
		*c = (*c)[1:]
	}
	return n, nil
}

func TestReader_SequenceSplitAcrossReads(t *testing.T) {
	src := &chunks{"a\x1b[1;", "2Ab"}
	r := NewReader(src)
	var got []string
	for {
		ev, err := r.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		got = append(got, ev.String())
	}
	if strings.Join(got, ",") != "a,shift+up,b" {
		t.Fatalf("events=%v, want [a shift+up b]", got)
	}
}

func TestReader_RunesAndPasteSplitAcrossReads(t *testing.T) {
	r := NewReader(&chunks{"\xc3", "\xa9\x1b[3~", "\x1b[200~x\r", "y\x1b[20", "1~"})
	var got []Event
	for {
		ev, err := r.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		got = append(got, ev)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(got), got)
	}
	if got[0].String() != "é" || got[1].String() != "delete" {
		t.Fatalf("events=%v %v, want é delete", got[0], got[1])
	}
	if !got[2].Paste || string(got[2].Runes) != "x\ny" {
		t.Fatalf("paste=%+v, want x\\ny", got[2])
	}
}

func TestReader_PasteIsOneEvent(t *testing.T) {
	r := NewReader(strings.NewReader("\x1b[200~line one\r\n\x1b[Aline two\x1b[201~z"))
	ev, err := r.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if !ev.Paste || string(ev.Runes) != "line one\n\x1b[Aline two" {
		t.Fatalf("paste=%q paste=%v", string(ev.Runes), ev.Paste)
	}
	ev, err = r.ReadEvent()
	if err != nil || ev.String() != "z" {
		t.Fatalf("after paste=%v %v, want z", ev, err)
	}
}

func TestReader_UnterminatedPasteFlushedAtEOF(t *testing.T) {
	r := NewReader(strings.NewReader("\x1b[200~abc"))
	ev, err := r.ReadEvent()
	if err != nil || !ev.Paste || string(ev.Runes) != "abc" {
		t.Fatalf("ReadEvent=%+v %v, want paste abc", ev, err)
	}
	if _, err := r.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v, want EOF", err)
	}
}

func TestReader_ErrorAfterBufferedEvents(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(boom)))
	for _, want := range []string{"a", "b"} {
		ev, err := r.ReadEvent()
		if err != nil || ev.String() != want {
			t.Fatalf("ReadEvent=%v %v, want %s", ev, err, want)
		}
	}
	if _, err := r.ReadEvent(); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
	if _, err := r.ReadEvent(); !errors.Is(err, boom) {
		t.Fatalf("second err=%v, want %v", err, boom)
	}
}

func TestReader_SequenceSplitRightAfterEsc(t *testing.T) {
	r := NewReader(iotest.OneByteReader(strings.NewReader("\x1b[A\x1b[1;5Dx")))
	var got []string
	for {
		ev, err := r.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		got = append(got, ev.String())
	}
	if strings.Join(got, ",") != "up,ctrl+left,x" {
		t.Fatalf("events=%v, want [up ctrl+left x]", got)
	}
}

func TestReader_LoneEscTimesOut(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() { _, _ = pw.Write([]byte("\x1b")) }()

	r := NewReader(pr)
	r.EscTimeout = 10 * time.Millisecond
	ev, err := r.ReadEvent()
	if err != nil || ev.Key != KeyEscape || ev.Mod != ModNone {
		t.Fatalf("ReadEvent=%v %v, want esc", ev, err)
	}

	// The read started while waiting still delivers what comes next.
	go func() { _, _ = pw.Write([]byte("x")) }()
	ev, err = r.ReadEvent()
	if err != nil || ev.String() != "x" {
		t.Fatalf("ReadEvent=%v %v, want x", ev, err)
	}
}

func TestReader_LoneEscAtEOF(t *testing.T) {
	r := NewReader(strings.NewReader("a\x1b"))
	for _, want := range []string{"a", "esc"} {
		ev, err := r.ReadEvent()
		if err != nil || ev.String() != want {
			t.Fatalf("ReadEvent=%v %v, want %s", ev, err, want)
		}
	}
	if _, err := r.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v, want EOF", err)
	}
}

func TestReader_ZeroEscTimeoutIsImmediate(t *testing.T) {
	r := NewReader(&chunks{"\x1b", "[A"})
	r.EscTimeout = 0
	var got []string
	for {
		ev, err := r.ReadEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		got = append(got, ev.String())
	}
	if strings.Join(got, ",") != "esc,[,A" {
		t.Fatalf("events=%v, want [esc [ A]", got)
	}
}
