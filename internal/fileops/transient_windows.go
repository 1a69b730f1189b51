// file: internal/fileops/transient_windows.go
// version: 1.0.0
// guid: bbdeb9a5-428b-4776-a3f6-af71bc42ea93

//go:build windows

package fileops

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"
)

// IsTransientLock reports whether err looks like the path is held open or
// locked by another process. Explorer and media players holding an album
// folder produce ERROR_ACCESS_DENIED on directory moves.
func IsTransientLock(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, windows.ERROR_ACCESS_DENIED) ||
		errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
