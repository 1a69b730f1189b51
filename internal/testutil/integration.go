// file: internal/testutil/integration.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package testutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/jdfalk/musort/internal/config"
	"github.com/jdfalk/musort/internal/metadata"
	"github.com/stretchr/testify/require"
)

// fakeMagic marks a file written by WriteTrack.
const fakeMagic = "MUSORT-FAKE"

// ErrNotFake is returned by ContentReader for files WriteTrack did not write.
var ErrNotFake = errors.New("not a fake track")

// LibraryEnv holds the directories of a library test.
type LibraryEnv struct {
	Root string
	T    *testing.T
}

// SetupLibrary creates an empty library root and returns a config pointing
// at it with every mode enabled except duplicate removal and cleanup.
func SetupLibrary(t *testing.T) (*LibraryEnv, *config.Config) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "library")
	require.NoError(t, os.MkdirAll(root, 0755))

	cfg := &config.Config{
		RootDir:              root,
		RenameDirs:           true,
		RenameFiles:          true,
		IgnoredNames:         []string{".git", "__pycache__", "downloading", "itunes"},
		SeparatorPolicy:      "linux",
		MaxWidth:             50,
		ScanLimit:            5,
		NonInformativeGenres: []string{"Other"},
	}
	return &LibraryEnv{Root: root, T: t}, cfg
}

// Path joins elems below the library root.
func (env *LibraryEnv) Path(elems ...string) string {
	return filepath.Join(append([]string{env.Root}, elems...)...)
}

// WriteTrack writes a fake music file whose tags ContentReader can read
// back. The tags travel with the file when it is moved or renamed.
func (env *LibraryEnv) WriteTrack(rel string, tags metadata.TagSet) string {
	env.T.Helper()
	path := env.Path(rel)
	require.NoError(env.T, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.T, os.WriteFile(path, EncodeTags(tags), 0644))
	return path
}

// WriteFile writes arbitrary content below the root.
func (env *LibraryEnv) WriteFile(rel, content string) string {
	env.T.Helper()
	path := env.Path(rel)
	require.NoError(env.T, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.T, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Mkdir creates a directory below the root.
func (env *LibraryEnv) Mkdir(rel string) string {
	env.T.Helper()
	path := env.Path(rel)
	require.NoError(env.T, os.MkdirAll(path, 0755))
	return path
}

// Tree lists every file and directory below the root as slash separated
// relative paths, directories with a trailing slash, sorted.
func (env *LibraryEnv) Tree() []string {
	env.T.Helper()
	return Tree(env.T, env.Root)
}

// Tree lists everything below root; see LibraryEnv.Tree.
func Tree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}

// EncodeTags renders tags in the fake track format.
func EncodeTags(tags metadata.TagSet) []byte {
	var b bytes.Buffer
	b.WriteString(fakeMagic + "\n")
	for _, kv := range [][2]string{
		{"artist", tags.Artist},
		{"albumartist", tags.AlbumArtist},
		{"album", tags.Album},
		{"genre", tags.Genre},
		{"year", tags.Year},
		{"title", tags.Title},
		{"track", tags.Track},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&b, "%s=%s\n", kv[0], kv[1])
		}
	}
	return b.Bytes()
}

// ContentReader reads tags from files written by WriteTrack and fails on
// anything else, like a real reader facing a corrupt file.
type ContentReader struct{}

// ReadTags implements metadata.TagReader.
func (ContentReader) ReadTags(path string) (metadata.TagSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metadata.TagSet{}, &metadata.ReadError{Path: path, Err: err}
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() || sc.Text() != fakeMagic {
		return metadata.TagSet{}, &metadata.ReadError{Path: path, Err: ErrNotFake}
	}
	var ts metadata.TagSet
	for sc.Scan() {
		k, v, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		switch k {
		case "artist":
			ts.Artist = v
		case "albumartist":
			ts.AlbumArtist = v
		case "album":
			ts.Album = v
		case "genre":
			ts.Genre = v
		case "year":
			ts.Year = v
		case "title":
			ts.Title = v
		case "track":
			ts.Track = v
		}
	}
	return ts, nil
}

// WriteID3Track writes a tag-only MP3 file with real ID3v2 frames.
func (env *LibraryEnv) WriteID3Track(rel string, tags metadata.TagSet) string {
	env.T.Helper()
	path := env.Path(rel)
	require.NoError(env.T, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.T, os.WriteFile(path, nil, 0644))

	tg, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(env.T, err)
	defer tg.Close()

	tg.SetDefaultEncoding(id3v2.EncodingUTF8)
	tg.SetArtist(tags.Artist)
	tg.SetAlbum(tags.Album)
	tg.SetGenre(tags.Genre)
	tg.SetYear(tags.Year)
	tg.SetTitle(tags.Title)
	if tags.AlbumArtist != "" {
		tg.AddTextFrame(tg.CommonID("Band/Orchestra/Accompaniment"), tg.DefaultEncoding(), tags.AlbumArtist)
	}
	if tags.Track != "" {
		tg.AddTextFrame(tg.CommonID("Track number/Position in set"), tg.DefaultEncoding(), tags.Track)
	}
	require.NoError(env.T, tg.Save())
	return path
}
