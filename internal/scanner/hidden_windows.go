// file: internal/scanner/hidden_windows.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f12345678901

//go:build windows

package scanner

import (
	"io/fs"
	"strings"
	"syscall"
)

// isHidden honours both dot-prefixed names and the hidden file attribute.
func isHidden(path string, entry fs.DirEntry) bool {
	if strings.HasPrefix(entry.Name(), ".") {
		return true
	}
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
