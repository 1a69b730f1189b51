// file: internal/naming/naming.go
// version: 1.1.0
// guid: 25046150-b5c1-41c8-966f-1b546f47e5e6

// Package naming turns classified albums and tracks into sanitized path
// components.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jdfalk/musort/internal/models"
	"github.com/jdfalk/musort/internal/sanitize"
	"golang.org/x/text/cases"
)

// Placeholders used when a tag is absent or sanitizes to nothing.
const (
	UnknownGenre  = "UNKNOWN_GENRE"
	UnknownArtist = "UNKNOWN_ARTIST"
	UnknownAlbum  = "UNKNOWN_ALBUM"
	UnknownTrack  = "UNKNOWN_TRACK"
)

// Segments are the three directory levels below the target root.
type Segments struct {
	Genre  string
	Artist string
	Album  string
}

// Path joins the segments below root.
func (s Segments) Path(root string) string {
	return filepath.Join(root, s.Genre, s.Artist, s.Album)
}

// Namer computes target names for albums and tracks.
type Namer struct {
	san            sanitize.Sanitizer
	width          int
	nonInformative map[string]struct{}
}

// New creates a Namer. Genres listed in nonInformative (compared case
// insensitively) are treated as absent.
func New(san sanitize.Sanitizer, maxWidth int, nonInformative []string) *Namer {
	n := &Namer{
		san:            san,
		width:          maxWidth,
		nonInformative: make(map[string]struct{}, len(nonInformative)),
	}
	for _, g := range nonInformative {
		if g = strings.TrimSpace(g); g != "" {
			n.nonInformative[fold(g)] = struct{}{}
		}
	}
	return n
}

// Segments returns the genre, artist and album directory names for a.
func (n *Namer) Segments(a models.Album) Segments {
	genre := n.san.SanitizeGenre(a.Genre, n.width)
	if _, skip := n.nonInformative[fold(genre)]; skip || genre == "" {
		genre = UnknownGenre
	}
	return Segments{
		Genre:  genre,
		Artist: orDefault(n.san.Sanitize(a.Artist, n.width), UnknownArtist),
		Album:  n.AlbumDir(a),
	}
}

// AlbumDir returns the last path segment: "YYYY - Album" when a year is
// known, the bare album otherwise.
func (n *Namer) AlbumDir(a models.Album) string {
	title := orDefault(n.san.Sanitize(a.Title, n.width), UnknownAlbum)
	year := n.san.Sanitize(a.Year, n.width)
	if year == "" {
		return title
	}
	// Both parts are already clean; sanitizing the joined string again would
	// cut at separators the first pass introduced.
	return sanitize.Truncate(year+" - "+title, n.width, sanitize.Placeholder)
}

// TargetDir returns the directory a classified album belongs in.
func (n *Namer) TargetDir(root string, a models.Album) string {
	return n.Segments(a).Path(root)
}

// NameFor returns "NN - Title.ext" for t. A missing track number becomes
// "00" and the extension is kept exactly as found.
func (n *Namer) NameFor(t models.Track) string {
	title := orDefault(n.san.Sanitize(t.Title, n.width), UnknownTrack)
	return fmt.Sprintf("%02d - %s%s", t.Number, title, t.Ext())
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func fold(s string) string {
	return cases.Fold().String(s)
}
