// file: internal/metadata/metadata.go
// version: 2.1.0
// guid: 9d0e1f2a-3b4c-5d6e-7f8a-9b0c1d2e3f4a

package metadata

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// TagSet holds the raw tag values of one audio file. Any field may be empty;
// source libraries are frequently incomplete, and a file without any tag
// block reads as an empty TagSet rather than an error.
type TagSet struct {
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Year        string
	Title       string
	Track       string
}

// TagReader extracts tags from an audio file.
type TagReader interface {
	ReadTags(path string) (TagSet, error)
}

// ReadError reports a file whose tags could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read tags %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (ts TagSet) trimmed() TagSet {
	return TagSet{
		Artist:      strings.TrimSpace(ts.Artist),
		AlbumArtist: strings.TrimSpace(ts.AlbumArtist),
		Album:       strings.TrimSpace(ts.Album),
		Genre:       strings.TrimSpace(ts.Genre),
		Year:        strings.TrimSpace(ts.Year),
		Title:       strings.TrimSpace(ts.Title),
		Track:       strings.TrimSpace(ts.Track),
	}
}

// DhowdenReader reads ID3v1/2, MP4, FLAC and OGG tags with github.com/dhowden/tag.
type DhowdenReader struct{}

// ReadTags implements TagReader.
func (DhowdenReader) ReadTags(path string) (TagSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return TagSet{}, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		// Untagged audio is still music; every field falls back to a placeholder.
		return TagSet{}, nil
	}
	if err != nil {
		return TagSet{}, &ReadError{Path: path, Err: err}
	}

	ts := TagSet{
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		Title:       m.Title(),
	}
	if y := m.Year(); y > 0 {
		ts.Year = strconv.Itoa(y)
	}
	if n, _ := m.Track(); n > 0 {
		ts.Track = strconv.Itoa(n)
	}
	return ts.trimmed(), nil
}

// NewDefaultReader returns the reader used by the CLI: TagLib when compiled
// in with the 'taglib' build tag, dhowden/tag otherwise, with an id3v2
// fallback for MPEG audio that the primary reader rejects.
func NewDefaultReader() TagReader {
	var primary TagReader = DhowdenReader{}
	if taglibAvailable {
		primary = TaglibReader{}
	}
	return &FallbackReader{
		Primary:    primary,
		Fallback:   ID3v2Reader{},
		Extensions: []string{".mp3", ".mp2", ".mp1"},
	}
}
