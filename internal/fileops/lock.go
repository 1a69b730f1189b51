// file: internal/fileops/lock.go
// version: 1.0.0
// guid: 630f9999-59e3-4641-b242-ac5aae8fdc65

package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run already holds the lock for a root.
var ErrLocked = errors.New("another run is already working on this directory")

// RunLock is an exclusive, process-wide lock for one library root.
type RunLock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the lock file used for root. It lives in the temp dir so
// the library itself is never touched.
func LockPath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "musort-"+hex.EncodeToString(sum[:8])+".lock")
}

// AcquireRunLock takes the lock for root without blocking.
func AcquireRunLock(root string) (*RunLock, error) {
	path := LockPath(root)
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return &RunLock{path: path, lock: l}, nil
}

// Path returns the lock file path.
func (r *RunLock) Path() string { return r.path }

// Release drops the lock. The lock file is left behind for reuse.
func (r *RunLock) Release() error {
	if r == nil {
		return nil
	}
	return r.lock.Unlock()
}
