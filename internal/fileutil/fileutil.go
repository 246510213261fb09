package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrDestinationExists reports a move whose target name is already taken.
var ErrDestinationExists = fmt.Errorf("destination already exists: %w", fs.ErrExist)

// HashFile streams the file at path through SHA-256 and returns the lower-case
// hex digest.
func HashFile(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, in); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// MoveNoReplace renames src to dst, failing with ErrDestinationExists when dst
// is already present. Where the platform supports it the check and the rename
// are a single atomic call.
func MoveNoReplace(src, dst string) error {
	err := renameNoReplace(src, dst)
	if errors.Is(err, errNoReplaceUnsupported) {
		return checkedRename(src, dst)
	}
	return err
}

var errNoReplaceUnsupported = errors.New("rename without replace unsupported")

func checkedRename(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: ErrDestinationExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check destination %s: %w", dst, err)
	}
	return os.Rename(src, dst)
}
