// Package debug is an opt-in trace log for diagnosing terminal output.
//
// Nothing is written until Init is called, either explicitly or through the
// QUILL_DEBUG environment variable by InitFromEnv.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sanity-io/litter"
)

// EnvVar names the environment variable read by InitFromEnv.
const EnvVar = "QUILL_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens path for appending and enables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create debug log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return nil
}

// InitFromEnv calls Init with $QUILL_DEBUG when it is set.
func InitFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// Enabled reports whether a log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a timestamped line. It is a no-op while logging is disabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

// Dump logs a pretty-printed value under label.
func Dump(label string, v any) {
	if !Enabled() {
		return
	}
	Log("%s: %s", label, Sdump(v))
}

// Sdump formats v the way Dump does, without private fields.
func Sdump(v any) string {
	return dumper.Sdump(v)
}

var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
}
