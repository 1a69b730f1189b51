// file: internal/organizer/covers.go
// version: 1.0.0
// guid: a21127e2-c114-4394-9908-179b29331a76

package organizer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jdfalk/musort/internal/fileops"
	"github.com/sirupsen/logrus"
)

// Cover art named "cover" is unified onto "folder".
const (
	canonicalCover = "folder"
	synonymCover   = "cover"
)

var coverExts = []string{".jpg", ".jpeg", ".png"}

// UnifyCoverArt renames Cover.<ext> to Folder.<ext> in dir, or deletes it
// when Folder.<ext> already exists. Names match case insensitively. It
// never fails: problems are logged and the album move goes ahead. It
// returns the number of files changed.
func UnifyCoverArt(dir string, dryRun bool, log logrus.FieldLogger) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Debug("cover art skipped")
		return 0
	}

	byName := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			byName[strings.ToLower(e.Name())] = e.Name()
		}
	}

	changed := 0
	for _, ext := range coverExts {
		cover, ok := byName[synonymCover+ext]
		if !ok {
			continue
		}
		src := filepath.Join(dir, cover)
		l := log.WithField("file", src)

		if folder, ok := byName[canonicalCover+ext]; ok {
			l = l.WithField("kept", folder)
			if dryRun {
				l.Debug("would delete duplicate cover art")
				changed++
				continue
			}
			if err := os.Remove(src); err != nil {
				l.WithError(err).Debug("could not delete cover art")
				continue
			}
			l.Debug("deleted duplicate cover art")
			changed++
			continue
		}

		dst := filepath.Join(dir, "Folder"+filepath.Ext(cover))
		l = l.WithField("to", dst)
		if dryRun {
			l.Debug("would rename cover art")
			changed++
			continue
		}
		outcome, err := fileops.RenameNoReplace(src, dst)
		if outcome != fileops.Renamed {
			l.WithError(err).WithField("outcome", outcome.String()).Debug("cover art left alone")
			continue
		}
		l.Debug("renamed cover art")
		changed++
	}
	return changed
}
