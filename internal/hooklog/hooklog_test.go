package hooklog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLogfAppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hooks.log")
	logger := New(path)

	logger.Logf("first %s", "line")
	logger.Logf("second line")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}.*\] `)
	if !pattern.MatchString(lines[0]) {
		t.Fatalf("missing timestamp prefix: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "first line") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "second line") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestLogfDefaultPath(t *testing.T) {
	logger := New("")
	if logger.Path != DefaultPath {
		t.Fatalf("unexpected default path: %q", logger.Path)
	}
}

func TestLogfSwallowsFailures(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	// Parent "directory" is a regular file; Logf must not panic or error.
	logger := New(filepath.Join(blocker, "hooks.log"))
	logger.Logf("dropped")
}

func TestLogfNilLogger(t *testing.T) {
	var logger *Logger
	logger.Logf("ignored")
}
