// file: internal/organizer/tracks.go
// version: 1.0.0
// guid: bd302911-6d07-4623-9c51-e03e01cecff8

package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdfalk/musort/internal/fileops"
	"github.com/jdfalk/musort/internal/ledger"
	"github.com/jdfalk/musort/internal/metrics"
	"github.com/jdfalk/musort/internal/models"
	"github.com/sirupsen/logrus"
)

// renameTracks renames every music file directly in dir to "NN - Title.ext".
// dir is listed afresh because an album move invalidates earlier paths.
// Files named in skipFailed already had their tag error recorded.
func (o *Organizer) renameTracks(dir string, skipFailed map[string]struct{}) error {
	listing, err := o.filter.List(dir)
	if err != nil {
		o.record(ledger.Entry{Kind: ledger.IO, Path: dir, Err: err})
		return nil
	}

	for _, path := range listing.Music {
		tags, err := o.reader.ReadTags(path)
		if err != nil {
			if _, seen := skipFailed[filepath.Base(path)]; !seen {
				o.record(ledger.Entry{Kind: ledger.TagRead, Path: path, Err: err})
			}
			continue
		}

		name := o.namer.NameFor(models.NewTrack(path, tags))
		dst := filepath.Join(dir, name)
		log := o.log.WithFields(logrus.Fields{"from": path, "to": name})

		outcome, err := o.rename(path, dst)
		switch outcome {
		case fileops.Unchanged:
			log.Debug("track already named")
		case fileops.Renamed:
			o.stats.FilesRenamed++
			o.addAction(ActionRenameFile, path, dst)
			if o.config.DryRun {
				log.Info("would rename track")
			} else {
				metrics.IncFilesRenamed()
				log.Info("renamed track")
			}
		case fileops.Occupied:
			if err := o.resolveFileConflict(path, dst, log); err != nil {
				return err
			}
		default:
			if err := o.failure("rename", err, ledger.Entry{Path: path}); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveFileConflict handles a track whose new name is taken. With
// duplicate removal the existing file wins and the source is deleted,
// provided the contents match when verification is on.
func (o *Organizer) resolveFileConflict(src, dst string, log logrus.FieldLogger) error {
	conflict := ledger.Entry{Kind: ledger.Conflict, Path: src, Err: fmt.Errorf("%s already exists", dst)}
	if !o.config.RemoveDuplicates {
		o.record(conflict)
		return nil
	}

	info, err := os.Stat(dst)
	if err != nil {
		return o.failure("stat", err, ledger.Entry{Path: dst})
	}
	if info.IsDir() {
		conflict.Err = fmt.Errorf("%s is a directory", dst)
		o.record(conflict)
		return nil
	}
	if o.config.VerifyDuplicates {
		same, err := fileops.SameContent(src, dst)
		if err != nil {
			return o.failure("compare", err, ledger.Entry{Path: src})
		}
		if !same {
			conflict.Err = fmt.Errorf("%s exists with different content", dst)
			o.record(conflict)
			return nil
		}
	}

	if err := o.remove(src); err != nil {
		return o.failure("remove", err, ledger.Entry{Path: src})
	}
	o.stats.DuplicatesRemoved++
	o.addAction(ActionDelete, src, "")
	if o.config.DryRun {
		log.Info("would remove duplicate track")
	} else {
		metrics.IncDuplicatesRemoved("file")
		log.Info("removed duplicate track")
	}
	return nil
}
