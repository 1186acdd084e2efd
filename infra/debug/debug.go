// Package debug provides opt-in debug logging for terminalhn.
//
// The TUI owns stdout, so messages go to a file:
//
//	TERMINALHN_DEBUG_LOG=/tmp/terminalhn.log terminalhn
//
// When no file is configured every function is a no-op.
package debug

import (
	"io"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TERMINALHN_DEBUG_LOG"

var (
	enabled atomic.Bool // Read from tea.Cmd goroutines
	logger  *log.Logger
)

// Start redirects the standard logger to path via bubbletea and enables
// Log. The returned closer flushes and disables logging. An empty path is a
// no-op.
func Start(path string) (io.Closer, error) {
	if path == "" {
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "terminalhn")
	if err != nil {
		return nil, err
	}
	logger = log.Default()
	logger.SetFlags(log.Ltime | log.Lmicroseconds)
	enabled.Store(true)
	return closer{f}, nil
}

type closer struct{ io.Closer }

func (c closer) Close() error {
	enabled.Store(false)
	return c.Closer.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled.Load()
}

// Log writes a debug message if debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond || !enabled.Load() {
		return
	}
	logger.Printf(format, args...)
}
