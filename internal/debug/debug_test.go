package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_DisabledIsNoop(t *testing.T) {
	if Enabled() {
		t.Fatalf("logging should start disabled")
	}
	Log("dropped %d", 1)
	Dump("dropped", struct{ A int }{A: 1})
}

func TestInit_WritesTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quill.log")
	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Log("frame %s", "full")
	Dump("state", struct{ Low, High int }{Low: 2, High: 7})
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "] frame full\n") {
		t.Fatalf("log missing frame line:\n%s", got)
	}
	if !strings.Contains(got, "High: 7") {
		t.Fatalf("log missing dump:\n%s", got)
	}
}

func TestInit_EmptyPath(t *testing.T) {
	if err := Init(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestInitFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvVar, "")
	if err := InitFromEnv(); err != nil {
		t.Fatalf("init from env: %v", err)
	}
	if Enabled() {
		t.Fatalf("logging should stay disabled")
	}
}
