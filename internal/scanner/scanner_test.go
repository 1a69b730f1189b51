// file: internal/scanner/scanner_test.go
// version: 2.0.0
// guid: 56753a20-dd09-40c3-9e46-c611404b465b

package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListSplitsDirsAndMusic(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, "01 - a.mp3"))
	mkfile(t, filepath.Join(root, "02 - b.FLAC"))
	mkfile(t, filepath.Join(root, "cover.jpg"))
	mkfile(t, filepath.Join(root, ".hidden.mp3"))
	mkfile(t, filepath.Join(root, "Album", "x.ogg"))
	mkfile(t, filepath.Join(root, ".git", "HEAD"))
	mkfile(t, filepath.Join(root, "iTunes", "lib.xml"))
	mkfile(t, filepath.Join(root, "Downloading", "part.mp3"))
	mkfile(t, filepath.Join(root, ".stash", "y.mp3"))

	f := NewFilter(Options{Ignored: DefaultIgnored})
	l, err := f.List(root)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "Album")}, l.Dirs)
	assert.Equal(t, []string{
		filepath.Join(root, "01 - a.mp3"),
		filepath.Join(root, "02 - b.FLAC"),
	}, l.Music)
}

func TestListIncludeHidden(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, ".hidden.mp3"))
	mkfile(t, filepath.Join(root, ".stash", "y.mp3"))
	mkfile(t, filepath.Join(root, ".git", "HEAD"))

	f := NewFilter(Options{IncludeHidden: true, Ignored: DefaultIgnored})
	l, err := f.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".stash")}, l.Dirs)
	assert.Equal(t, []string{filepath.Join(root, ".hidden.mp3")}, l.Music)
}

func TestListSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	other := t.TempDir()
	mkfile(t, filepath.Join(other, "Album", "x.mp3"))
	require.NoError(t, os.Symlink(filepath.Join(other, "Album"), filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(other, "Album", "x.mp3"), filepath.Join(root, "link.mp3")))
	require.NoError(t, os.Symlink(filepath.Join(other, "missing"), filepath.Join(root, "dangling")))

	l, err := NewFilter(Options{}).List(root)
	require.NoError(t, err)
	assert.Empty(t, l.Dirs)
	assert.Empty(t, l.Music)

	l, err = NewFilter(Options{FollowSymlinks: true}).List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "linked")}, l.Dirs)
	assert.Equal(t, []string{filepath.Join(root, "link.mp3")}, l.Music)
}

func TestListMissingDir(t *testing.T) {
	_, err := NewFilter(Options{}).List(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsMusicName(t *testing.T) {
	f := NewFilter(Options{Extensions: []string{"mp3", ".FLAC", " "}})
	assert.True(t, f.IsMusicName("a.mp3"))
	assert.True(t, f.IsMusicName("a.Mp3"))
	assert.True(t, f.IsMusicName("a.flac"))
	assert.False(t, f.IsMusicName("a.ogg"))
	assert.False(t, f.IsMusicName("mp3"))

	def := NewFilter(Options{})
	for _, ext := range DefaultExtensions {
		assert.True(t, def.IsMusicName("track"+ext), ext)
	}
	assert.False(t, def.IsMusicName("cover.jpg"))
}

func TestVisitedEnter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")))

	v := Visited{}
	assert.True(t, v.Enter(filepath.Join(root, "real")))
	assert.False(t, v.Enter(filepath.Join(root, "alias")))
	assert.False(t, v.Enter(filepath.Join(root, "real")+string(filepath.Separator)))
}
