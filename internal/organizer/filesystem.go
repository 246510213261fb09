package organizer

import (
	"os"

	"filesorter/internal/fileutil"
)

// FileSystem abstracts the filesystem calls the organizer makes so tests can
// prove dry-run never mutates and inject failures.
type FileSystem interface {
	Hash(path string) (string, error)
	Remove(path string) error
	MkdirAll(path string) error
	Move(src, dst string) error
}

// OSFileSystem is the FileSystem backed by the real filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Hash(path string) (string, error) { return fileutil.HashFile(path) }

func (OSFileSystem) Remove(path string) error { return os.Remove(path) }

func (OSFileSystem) MkdirAll(path string) error { return os.MkdirAll(path, 0o755) }

func (OSFileSystem) Move(src, dst string) error { return fileutil.MoveNoReplace(src, dst) }
