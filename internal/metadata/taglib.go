// file: internal/metadata/taglib.go
// version: 1.0.0
// guid: 4684a666-979b-41b5-afc7-24465d04843c

package metadata

import "errors"

// ErrTaglibUnavailable is returned when the binary was built without the 'taglib' tag.
var ErrTaglibUnavailable = errors.New("taglib support not compiled in")

// TaglibReader reads tags through TagLib. Without the 'taglib' build tag
// every call fails with ErrTaglibUnavailable.
type TaglibReader struct{}

// ReadTags implements TagReader.
func (TaglibReader) ReadTags(path string) (TagSet, error) {
	return readTagsWithTaglib(path)
}

// TaglibAvailable reports whether TagLib support was compiled in.
func TaglibAvailable() bool {
	return taglibAvailable
}
