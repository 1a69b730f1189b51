// file: internal/models/track.go
// version: 1.0.0
// guid: 2298073e-b559-44d9-8d56-b2665939db73

package models

import (
	"path/filepath"

	"github.com/jdfalk/musort/internal/metadata"
)

// Track is a music file seen during one run. Paths go stale as soon as the
// containing folder moves, so a Track is never kept across a rename.
type Track struct {
	Path   string
	Artist string
	Genre  string
	Album  string
	Year   string
	Title  string
	// Number is the track index; zero means absent.
	Number int
}

// NewTrack derives a Track from raw tags. Album artist wins over track
// artist and the year is reduced to four digits when it looks numeric.
func NewTrack(path string, ts metadata.TagSet) Track {
	artist := ts.AlbumArtist
	if artist == "" {
		artist = ts.Artist
	}
	n, _ := metadata.ParseTrack(ts.Track)
	return Track{
		Path:   path,
		Artist: artist,
		Genre:  ts.Genre,
		Album:  ts.Album,
		Year:   metadata.NormalizeYear(ts.Year),
		Title:  ts.Title,
		Number: n,
	}
}

// Name returns the base name of the file.
func (t Track) Name() string {
	return filepath.Base(t.Path)
}

// Ext returns the extension exactly as it appears on disk.
func (t Track) Ext() string {
	return filepath.Ext(t.Path)
}
