// file: internal/cache/genre.go
// version: 1.1.0
// guid: 965835a3-ccff-44de-a8ae-b6289fd04e28

package cache

import (
	"strings"

	"golang.org/x/text/cases"
)

// GenreCache pins every artist to the first genre seen for them. When
// disabled it passes proposed genres through untouched.
type GenreCache struct {
	enabled bool
	store   *Store[string]
}

// NewGenreCache creates a cache scoped to one run.
func NewGenreCache(enabled bool) *GenreCache {
	return &GenreCache{
		enabled: enabled,
		store:   New[string](ArtistKey),
	}
}

// ArtistKey case-folds an artist name so "AC/DC" and "ac/dc" share an entry.
func ArtistKey(artist string) string {
	return cases.Fold().String(strings.TrimSpace(artist))
}

// Enabled reports whether the single-genre-per-artist policy is active.
func (g *GenreCache) Enabled() bool {
	return g != nil && g.enabled
}

// ResolveGenre returns the genre recorded for artist, storing proposed if
// this is the first time the artist is seen. An empty proposed genre is
// stored too: the first folder decides, even when it had no genre.
func (g *GenreCache) ResolveGenre(artist, proposed string) string {
	if !g.Enabled() || strings.TrimSpace(artist) == "" {
		return proposed
	}
	if genre, ok := g.store.Get(artist); ok {
		return genre
	}
	genre, _ := g.store.GetOrSet(artist, proposed)
	return genre
}

// Len returns the number of artists pinned so far.
func (g *GenreCache) Len() int {
	if g == nil {
		return 0
	}
	return g.store.Len()
}
