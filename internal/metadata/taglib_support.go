// file: internal/metadata/taglib_support.go
// version: 2.1.0
// guid: 0c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f

//go:build taglib
// +build taglib

// TagLib native reader support (optional via build tag 'taglib'). Default build without tag excludes this file.

package metadata

import (
	"path/filepath"
	"strings"

	taglib "go.senan.xyz/taglib"
)

// taglibAvailable indicates native taglib path compiled in
var taglibAvailable = true

// readTagsWithTaglib reads the common tag keys through TagLib.
func readTagsWithTaglib(path string) (TagSet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return TagSet{}, &ReadError{Path: path, Err: err}
	}

	tags, err := taglib.ReadTags(abs)
	if err != nil {
		return TagSet{}, &ReadError{Path: path, Err: err}
	}
	if len(tags) == 0 {
		return TagSet{}, nil
	}

	first := func(key string) string {
		if v := tags[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	ts := TagSet{
		Artist:      first(taglib.Artist),
		AlbumArtist: first(taglib.AlbumArtist),
		Album:       first(taglib.Album),
		Genre:       first(taglib.Genre),
		Year:        first(taglib.Date),
		Title:       first(taglib.Title),
		Track:       first(taglib.TrackNumber),
	}
	return ts.trimmed(), nil
}
