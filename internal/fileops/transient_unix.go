// file: internal/fileops/transient_unix.go
// version: 1.0.0
// guid: 1c0a3437-f3ba-4429-b5f5-b1085bad3979

//go:build !windows

package fileops

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// IsTransientLock reports whether err looks like the path is held open or
// locked by another process rather than structurally wrong.
func IsTransientLock(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, unix.EBUSY) ||
		errors.Is(err, unix.ETXTBSY)
}
