// file: internal/metadata/fallback.go
// version: 1.0.0
// guid: 74490627-5a22-4eb4-b932-3f2ea40e1d0e

package metadata

import (
	"path/filepath"
	"strings"
)

// FallbackReader tries Primary first and, for files whose extension is listed
// in Extensions, retries with Fallback when Primary fails. An empty
// Extensions list applies the fallback to every file. When both fail the
// primary error is returned.
type FallbackReader struct {
	Primary    TagReader
	Fallback   TagReader
	Extensions []string
}

// ReadTags implements TagReader.
func (r *FallbackReader) ReadTags(path string) (TagSet, error) {
	ts, err := r.Primary.ReadTags(path)
	if err == nil || r.Fallback == nil || !r.applies(path) {
		return ts, err
	}
	if fts, ferr := r.Fallback.ReadTags(path); ferr == nil {
		return fts, nil
	}
	return TagSet{}, err
}

func (r *FallbackReader) applies(path string) bool {
	if len(r.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range r.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
