// file: internal/scanner/scanner.go
// version: 2.0.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the suffixes the tag readers understand.
var DefaultExtensions = []string{
	".mp1", ".mp2", ".mp3",
	".oga", ".ogg", ".opus",
	".wav", ".flac", ".wma",
	".m4a", ".m4b", ".m4r", ".mp4",
	".aiff", ".aifc", ".aif", ".afc",
}

// DefaultIgnored are directory names never descended into.
var DefaultIgnored = []string{".git", "__pycache__", "downloading", "itunes"}

// Options configures a Filter.
type Options struct {
	IncludeHidden  bool
	FollowSymlinks bool
	Ignored        []string
	Extensions     []string
}

// Filter decides which directory entries take part in a run.
type Filter struct {
	includeHidden  bool
	followSymlinks bool
	ignored        map[string]struct{}
	extensions     map[string]struct{}
}

// Listing is the relevant content of one directory, in listing order.
type Listing struct {
	Dirs  []string
	Music []string
}

// NewFilter builds a Filter. Ignored names and extensions are matched case
// insensitively; nil Extensions means DefaultExtensions.
func NewFilter(opts Options) *Filter {
	exts := opts.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}
	f := &Filter{
		includeHidden:  opts.IncludeHidden,
		followSymlinks: opts.FollowSymlinks,
		ignored:        make(map[string]struct{}, len(opts.Ignored)),
		extensions:     make(map[string]struct{}, len(exts)),
	}
	for _, name := range opts.Ignored {
		f.ignored[strings.ToLower(name)] = struct{}{}
	}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[ext] = struct{}{}
	}
	return f
}

// IsMusicName reports whether name carries a supported extension.
func (f *Filter) IsMusicName(name string) bool {
	_, ok := f.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ValidDir reports whether entry, found in dir, is a directory to descend
// into: a real directory (or a followed symlink to one) that is neither
// ignored nor, unless configured, hidden.
func (f *Filter) ValidDir(dir string, entry fs.DirEntry) bool {
	if _, skip := f.ignored[strings.ToLower(entry.Name())]; skip {
		return false
	}
	if !f.visible(dir, entry) {
		return false
	}
	info, ok := f.resolve(dir, entry)
	return ok && info.IsDir()
}

// IsMusic reports whether entry, found in dir, is an eligible music file.
func (f *Filter) IsMusic(dir string, entry fs.DirEntry) bool {
	if !f.IsMusicName(entry.Name()) || !f.visible(dir, entry) {
		return false
	}
	info, ok := f.resolve(dir, entry)
	return ok && info.Mode().IsRegular()
}

// List reads dir once and splits it into valid subdirectories and music
// files. Entries keep the order os.ReadDir returns.
func (f *Filter) List(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("list %s: %w", dir, err)
	}
	var l Listing
	for _, e := range entries {
		switch {
		case f.ValidDir(dir, e):
			l.Dirs = append(l.Dirs, filepath.Join(dir, e.Name()))
		case f.IsMusic(dir, e):
			l.Music = append(l.Music, filepath.Join(dir, e.Name()))
		}
	}
	return l, nil
}

func (f *Filter) visible(dir string, entry fs.DirEntry) bool {
	if f.includeHidden {
		return true
	}
	return !isHidden(filepath.Join(dir, entry.Name()), entry)
}

// resolve returns the entry's info, following symlinks only when allowed.
func (f *Filter) resolve(dir string, entry fs.DirEntry) (fs.FileInfo, bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		if !f.followSymlinks {
			return nil, false
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		return info, err == nil
	}
	info, err := entry.Info()
	return info, err == nil
}

// Visited remembers resolved directory paths so a walk that follows
// symlinks enters each real directory once.
type Visited map[string]struct{}

// Enter records path and reports whether it had not been seen before.
func (v Visited) Enter(path string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = filepath.Clean(path)
	}
	if _, seen := v[resolved]; seen {
		return false
	}
	v[resolved] = struct{}{}
	return true
}
