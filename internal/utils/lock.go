package utils

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".lock"

// FileLock serializes whole-file-replace saves of a persistent store (the
// mapping table or the title database). There is no fine-grained locking:
// the store is read and rewritten as a unit, so writers take this lock for
// the duration of one save.
type FileLock struct {
	lock *flock.Flock
	path string
}

// NewFileLock creates a lock guarding the store at path.
func NewFileLock(path string) *FileLock {
	lockPath := path + lockFileSuffix
	return &FileLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}
}

// Lock acquires the store lock, waiting if another process holds it.
func (l *FileLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another epggrid process is writing to this file, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the store lock.
func (l *FileLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
