// file: internal/fileops/rename_other.go
// version: 1.0.0
// guid: 2685622d-ae6f-4846-bb95-1247259e89c7

//go:build !linux

package fileops

import "os"

func renameNoReplace(src, dst string) error {
	return os.Rename(src, dst)
}
