// file: internal/organizer/album.go
// version: 1.0.0
// guid: 5c025859-014f-4db5-92ad-174c1b2b6b06

package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdfalk/musort/internal/fileops"
	"github.com/jdfalk/musort/internal/ledger"
	"github.com/jdfalk/musort/internal/metrics"
	"github.com/jdfalk/musort/internal/models"
	"github.com/jdfalk/musort/internal/naming"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// tempPrefix names the hidden sibling an album passes through when its
// target lies inside itself.
const tempPrefix = ".musort-"

// moveAlbum moves dir to the target computed from a and returns where the
// album lives afterwards, or "" when it was removed as a duplicate. Only a
// StructuralError is returned; everything else is recorded and leaves dir
// in place.
func (o *Organizer) moveAlbum(dir string, a models.Album) (string, error) {
	seg := o.namer.Segments(a)
	target := seg.Path(o.target)
	log := o.log.WithFields(logrus.Fields{"from": dir, "to": target})

	if filepath.Clean(dir) == target {
		log.Debug("album already in place")
		return dir, nil
	}

	UnifyCoverArt(dir, o.config.DryRun, o.log)

	conflict := ledger.Entry{Kind: ledger.Conflict, Path: dir, Artist: seg.Artist, Album: seg.Album}
	switch {
	case within(dir, target):
		// The target is an ancestor of the album; it can never be a duplicate.
		conflict.Err = fmt.Errorf("target %s contains the album", target)
		o.record(conflict)
		return dir, nil
	case within(o.target, dir):
		conflict.Err = fmt.Errorf("target root %s lies inside the album", o.target)
		o.record(conflict)
		return dir, nil
	}

	src := dir
	if within(target, dir) && !o.config.DryRun {
		tmp := filepath.Join(filepath.Dir(dir), tempPrefix+ulid.Make().String())
		if err := os.Rename(dir, tmp); err != nil {
			return dir, o.failure("move", err, ledger.Entry{Path: dir, Artist: seg.Artist, Album: seg.Album})
		}
		src = tmp
	}
	restore := func() {
		if src != dir {
			if err := os.Rename(src, dir); err != nil {
				log.WithError(err).Error("could not restore album from temporary name")
			}
		}
	}

	if err := o.mkdirAll(filepath.Dir(target)); err != nil {
		restore()
		if fileops.IsNotDirectory(err) {
			return "", &ledger.StructuralError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
		}
		return dir, o.failure("mkdir", err, ledger.Entry{Path: dir, Artist: seg.Artist, Album: seg.Album})
	}

	outcome, err := o.rename(src, target)
	switch outcome {
	case fileops.Renamed:
		o.stats.DirsMoved++
		o.addAction(ActionMoveDir, dir, target)
		if o.config.DryRun {
			log.Info("would move album")
			return dir, nil
		}
		metrics.IncDirectoriesMoved()
		log.Info("moved album")
		return target, nil
	case fileops.Unchanged:
		return dir, nil
	case fileops.Occupied:
		restore()
		removed, err := o.resolveDirConflict(dir, target, seg, log)
		if removed {
			return "", err
		}
		return dir, err
	default:
		restore()
		return dir, o.failure("move", err, ledger.Entry{Path: dir, Artist: seg.Artist, Album: seg.Album})
	}
}

// resolveDirConflict handles an album whose target already exists. With
// duplicate removal the existing target wins and the source's files are
// deleted; otherwise the conflict is recorded. It reports whether dir is
// gone afterwards.
func (o *Organizer) resolveDirConflict(dir, target string, seg naming.Segments, log logrus.FieldLogger) (bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		return false, o.failure("stat", err, ledger.Entry{Path: target, Artist: seg.Artist, Album: seg.Album})
	}
	if !info.IsDir() {
		return false, &ledger.StructuralError{Op: "move", Path: target, Err: fmt.Errorf("target exists and is not a directory")}
	}

	if !o.config.RemoveDuplicates {
		o.record(ledger.Entry{
			Kind:   ledger.Conflict,
			Path:   dir,
			Artist: seg.Artist,
			Album:  seg.Album,
			Err:    fmt.Errorf("%s already exists", target),
		})
		return false, nil
	}

	return o.removeDuplicateDir(dir, log)
}

// removeDuplicateDir deletes the files directly inside dir and then dir
// itself. Subdirectories are never deleted; if any remain dir stays too.
func (o *Organizer) removeDuplicateDir(dir string, log logrus.FieldLogger) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, o.failure("read", err, ledger.Entry{Path: dir})
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if err := o.remove(p); err != nil {
			return false, o.failure("remove", err, ledger.Entry{Path: p})
		}
		o.addAction(ActionDelete, p, "")
	}
	if err := o.remove(dir); err != nil {
		log.WithError(err).Warn("duplicate album kept, it still has subdirectories")
		return false, nil
	}
	o.stats.DuplicatesRemoved++
	o.addAction(ActionDelete, dir, "")
	if o.config.DryRun {
		log.Info("would remove duplicate album")
	} else {
		metrics.IncDuplicatesRemoved("dir")
		log.Info("removed duplicate album")
	}
	return true, nil
}
