// file: internal/metadata/id3v2.go
// version: 1.1.0
// guid: 12907722-9109-47ac-b1b7-937ce30d598a

package metadata

import (
	"github.com/bogem/id3v2/v2"
)

// ID3v2Reader reads ID3v2 frames directly. It tolerates some malformed MP3
// headers that make the generic reader give up.
type ID3v2Reader struct{}

// ReadTags implements TagReader.
func (ID3v2Reader) ReadTags(path string) (TagSet, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TagSet{}, &ReadError{Path: path, Err: err}
	}
	defer t.Close()

	if !t.HasFrames() {
		return TagSet{}, nil
	}

	ts := TagSet{
		Artist:      t.Artist(),
		AlbumArtist: t.GetTextFrame(t.CommonID("Band/Orchestra/Accompaniment")).Text,
		Album:       t.Album(),
		Genre:       t.Genre(),
		Year:        t.Year(),
		Title:       t.Title(),
		Track:       t.GetTextFrame(t.CommonID("Track number/Position in set")).Text,
	}
	return ts.trimmed(), nil
}
