package session

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	mkdirRetries = 3
	backoffMin   = 10 * time.Millisecond
	backoffMax   = 50 * time.Millisecond
)

// Manager creates per-session log directories under a base directory.
// Independent processes may race on the same session id; exactly one
// creates the directory and the others treat already-exists as success.
type Manager struct {
	BaseDir string
}

func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = "logs"
	}
	return &Manager{BaseDir: baseDir}
}

// LogDir returns the log directory path for a session without creating it.
func (m *Manager) LogDir(sessionID string) string {
	return filepath.Join(m.BaseDir, sessionID)
}

// EnsureLogDir creates the session's log directory if it does not exist.
// Creation is guarded by a non-blocking lock on a sentinel file beside
// the base directory; when the lock cannot be taken, a short jittered
// retry loop of plain idempotent creation is the degraded mode. The
// sentinel is removed best-effort afterwards.
func (m *Manager) EnsureLogDir(sessionID string) (string, error) {
	dir := m.LogDir(sessionID)
	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}

	if err := os.MkdirAll(m.BaseDir, 0o755); err != nil {
		return "", fmt.Errorf("create log base dir: %w", err)
	}

	lockPath := filepath.Join(m.BaseDir, "."+sessionID+".lock")
	defer func() {
		_ = os.Remove(lockPath)
	}()

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil || !locked {
		if err := m.mkdirWithRetry(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	defer func() {
		_ = lock.Unlock()
	}()

	// Another process may have created it while we waited on the lock.
	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session log dir: %w", err)
	}
	return dir, nil
}

func (m *Manager) mkdirWithRetry(dir string) error {
	var err error
	for attempt := 0; attempt < mkdirRetries; attempt++ {
		if err = os.MkdirAll(dir, 0o755); err == nil {
			return nil
		}
		if attempt < mkdirRetries-1 {
			time.Sleep(backoffMin + rand.N(backoffMax-backoffMin))
		}
	}
	return fmt.Errorf("create session log dir: %w", err)
}
