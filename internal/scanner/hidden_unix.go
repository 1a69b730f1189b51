// file: internal/scanner/hidden_unix.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

//go:build !windows

package scanner

import (
	"io/fs"
	"strings"
)

// isHidden treats dot-prefixed names as hidden.
func isHidden(_ string, entry fs.DirEntry) bool {
	return strings.HasPrefix(entry.Name(), ".")
}
