// file: internal/models/album.go
// version: 1.0.0
// guid: ffd3a16d-e369-488c-87a0-834a6d9f8a49

package models

// Album is the classification of one folder. Empty fields are absent;
// defaults are substituted only when a target path is computed.
type Album struct {
	Genre  string
	Artist string
	Title  string
	Year   string
}

// Complete reports whether every field is populated.
func (a Album) Complete() bool {
	return a.Genre != "" && a.Artist != "" && a.Title != "" && a.Year != ""
}

// Merge fills the fields of a that are still empty from t and reports
// whether a is complete afterwards.
func (a *Album) Merge(t Track) bool {
	if a.Genre == "" {
		a.Genre = t.Genre
	}
	if a.Artist == "" {
		a.Artist = t.Artist
	}
	if a.Title == "" {
		a.Title = t.Album
	}
	if a.Year == "" {
		a.Year = t.Year
	}
	return a.Complete()
}
