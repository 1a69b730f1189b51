// file: internal/classifier/classifier.go
// version: 1.0.0
// guid: bbb5edb8-f1ac-498e-976d-89bf4399abaa

// Package classifier decides which album a folder holds from the tags of
// its direct music files.
package classifier

import (
	"github.com/jdfalk/musort/internal/cache"
	"github.com/jdfalk/musort/internal/metadata"
	"github.com/jdfalk/musort/internal/models"
)

// DefaultScanLimit bounds how many files are read per folder.
const DefaultScanLimit = 5

// Failure is a file whose tags could not be read.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of classifying one folder.
type Result struct {
	Album     models.Album
	Inspected int
	Failures  []Failure
}

// Readable reports whether at least one inspected file yielded tags.
func (r Result) Readable() bool {
	return r.Inspected > len(r.Failures)
}

// Classifier builds Albums from folder contents.
type Classifier struct {
	reader metadata.TagReader
	genres *cache.GenreCache
	limit  int
}

// New creates a Classifier. genres may be nil; limit < 1 falls back to
// DefaultScanLimit.
func New(reader metadata.TagReader, genres *cache.GenreCache, limit int) *Classifier {
	if limit < 1 {
		limit = DefaultScanLimit
	}
	return &Classifier{reader: reader, genres: genres, limit: limit}
}

// Classify reads paths in the given order, filling each album field from
// the first file that has it, and stops once every field is known or the
// scan limit is reached. Unreadable files count toward the limit. Fields
// nobody supplied stay empty.
func (c *Classifier) Classify(dir string, paths []string) Result {
	var res Result
	for _, p := range paths {
		if res.Inspected >= c.limit {
			break
		}
		res.Inspected++

		ts, err := c.reader.ReadTags(p)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Path: p, Err: err})
			continue
		}
		if res.Album.Merge(models.NewTrack(p, ts)) {
			break
		}
	}

	if res.Readable() && res.Album.Artist != "" {
		res.Album.Genre = c.genres.ResolveGenre(res.Album.Artist, res.Album.Genre)
	}
	return res
}
