// file: internal/models/models_test.go
// version: 1.0.0
// guid: f8fdd097-46e8-4616-bc3c-147fc393a90e

package models

import (
	"testing"

	"github.com/jdfalk/musort/internal/metadata"
	"github.com/stretchr/testify/assert"
)

func TestNewTrackPrefersAlbumArtist(t *testing.T) {
	tr := NewTrack("/music/a/01.mp3", metadata.TagSet{
		Artist:      "Hansi Kürsch",
		AlbumArtist: "Blind Guardian",
		Year:        "1985-05-01",
		Track:       "4/10",
	})
	assert.Equal(t, "Blind Guardian", tr.Artist)
	assert.Equal(t, "1985", tr.Year)
	assert.Equal(t, 4, tr.Number)

	tr = NewTrack("/music/a/02.mp3", metadata.TagSet{Artist: "Blind Guardian"})
	assert.Equal(t, "Blind Guardian", tr.Artist)
	assert.Zero(t, tr.Number)
}

func TestTrackNameAndExt(t *testing.T) {
	tr := Track{Path: "/music/a/Track One.FLAC"}
	assert.Equal(t, "Track One.FLAC", tr.Name())
	assert.Equal(t, ".FLAC", tr.Ext())
}

func TestAlbumMergeFillsOnlyEmptyFields(t *testing.T) {
	var a Album
	assert.False(t, a.Merge(Track{Genre: "Power Metal", Album: "Symphonies Of Doom"}))
	assert.False(t, a.Merge(Track{Genre: "Rock", Artist: "Blind Guardian"}))
	assert.True(t, a.Merge(Track{Album: "Other", Year: "1985"}))

	assert.Equal(t, Album{
		Genre:  "Power Metal",
		Artist: "Blind Guardian",
		Title:  "Symphonies Of Doom",
		Year:   "1985",
	}, a)
}
