package textcache

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".lock"

// ErrLocked reports that another process holds the cache lock.
var ErrLocked = errors.New("license text cache is in use by another spdxdiff process")

// Lock acquires the exclusive cache lock without blocking. The returned
// function releases it.
func (c *Cache) Lock() (func() error, error) {
	lockPath := filepath.Join(c.dir, lockFileName)
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, lockPath)
	}
	return lock.Unlock, nil
}
