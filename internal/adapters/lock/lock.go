package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileLocker implements ports.InstanceLocker with one lock file per user
type FileLocker struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.InstanceLocker = (*FileLocker)(nil)

// NewFileLocker creates a locker that keeps lock files in dir
func NewFileLocker(dir string) *FileLocker {
	return &FileLocker{dir: dir}
}

// Acquire takes an exclusive, non-blocking lock on <dir>/<user>.lock.
// The lock is held until release is called or the process exits.
func (l *FileLocker) Acquire(userID string) (func() error, error) {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := l.Path(userID)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		logging.Logger.Warn("Instance lock held elsewhere", "path", path, "error", err)
		return nil, fmt.Errorf("%w (lock file %s)", domain.ErrInstanceLocked, path)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	release := func() error {
		defer file.Close()
		if err := unlockFile(file); err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		logging.Logger.Debug("Instance lock released", "path", path)
		return nil
	}
	return release, nil
}

// Path returns the lock file used for userID
func (l *FileLocker) Path(userID string) string {
	name := unsafeChars.ReplaceAllString(userID, "_")
	if name == "" {
		name = "anonymous"
	}
	return filepath.Join(l.dir, name+".lock")
}
