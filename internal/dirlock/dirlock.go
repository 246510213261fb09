package dirlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrBusy is returned when another run holds a conflicting lock.
var ErrBusy = errors.New("another filesorter run is using this directory")

// Lock is a held directory lock.
type Lock struct {
	dir  string
	path string
	lock *flock.Flock
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Dir returns the directory the lock protects.
func (l *Lock) Dir() string { return l.dir }

// Release drops the lock. The lock file stays in place for later runs.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Acquire takes the lock for dir without blocking. shared selects a read lock.
func Acquire(dir string, shared bool) (*Lock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %q: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	lockDir := LockDir()
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", lockDir, err)
	}
	path := filepath.Join(lockDir, LockName(abs))

	fl := flock.New(path)
	var ok bool
	if shared {
		ok, err = fl.TryRLock()
	} else {
		ok, err = fl.TryLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (lock %s)", ErrBusy, abs, path)
	}
	return &Lock{dir: abs, path: path, lock: fl}, nil
}

// LockDir returns the directory holding lock files.
func LockDir() string {
	if base, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "filesorter")
	}
	return filepath.Join(os.TempDir(), "filesorter-locks")
}

// LockName derives a stable lock file name from an absolute directory path.
func LockName(absDir string) string {
	sum := sha256.Sum256([]byte(absDir))
	return "filesorter-" + hex.EncodeToString(sum[:])[:16] + ".lock"
}
