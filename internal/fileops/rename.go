// file: internal/fileops/rename.go
// version: 1.0.0
// guid: a751f0d7-05fd-4dd2-a4ed-dab219e2edd5

package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Outcome is the result of a RenameNoReplace call.
type Outcome int

const (
	// Failed means the rename did not happen; the error says why.
	Failed Outcome = iota
	// Renamed means src now lives at dst.
	Renamed
	// Unchanged means src and dst are the same path.
	Unchanged
	// Occupied means dst already exists and src was left alone.
	Occupied
)

func (o Outcome) String() string {
	switch o {
	case Renamed:
		return "renamed"
	case Unchanged:
		return "unchanged"
	case Occupied:
		return "occupied"
	default:
		return "failed"
	}
}

// RenameNoReplace moves src to dst without ever overwriting an existing
// entry. An occupied destination is reported as Occupied, not as an error.
// A destination that differs only in letter case and resolves to src itself
// (case-insensitive filesystems) is renamed in place.
func RenameNoReplace(src, dst string) (Outcome, error) {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if src == dst {
		return Unchanged, nil
	}

	srcInfo, err := os.Lstat(src)
	if err != nil {
		return Failed, err
	}
	dstInfo, err := os.Lstat(dst)
	switch {
	case err == nil:
		if !isCaseOnly(src, dst) || !os.SameFile(srcInfo, dstInfo) {
			return Occupied, nil
		}
		if err := os.Rename(src, dst); err != nil {
			return Failed, err
		}
		return Renamed, nil
	case !errors.Is(err, fs.ErrNotExist):
		return Failed, err
	}

	if err := renameNoReplace(src, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Occupied, nil
		}
		return Failed, err
	}
	return Renamed, nil
}

// IsNotDirectory reports whether err means a path component that should be
// a directory is something else.
func IsNotDirectory(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

func isCaseOnly(src, dst string) bool {
	return filepath.Dir(src) == filepath.Dir(dst) &&
		strings.EqualFold(filepath.Base(src), filepath.Base(dst))
}
