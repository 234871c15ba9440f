package hooklog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultPath is where hook diagnostics land when no path is configured.
const DefaultPath = ".claude/logs/summarizer.log"

// Logger appends timestamped lines to a file. Every failure is
// swallowed: a broken log file must never break a hook.
type Logger struct {
	Path string
}

func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	return &Logger{Path: path}
}

// Logf appends one "[timestamp] message" line, creating the log
// directory if needed.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = fmt.Fprintf(f, "[%s] %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}
