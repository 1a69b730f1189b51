// file: internal/organizer/fsops.go
// version: 1.0.0
// guid: eafc72f7-ed3b-451c-b239-cdee42658879

package organizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdfalk/musort/internal/fileops"
	"github.com/jdfalk/musort/internal/ledger"
	"github.com/sirupsen/logrus"
)

// rename wraps fileops.RenameNoReplace. In a dry run it only predicts the
// outcome from what is on disk.
func (o *Organizer) rename(src, dst string) (fileops.Outcome, error) {
	if !o.config.DryRun {
		return fileops.RenameNoReplace(src, dst)
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return fileops.Unchanged, nil
	}
	if _, err := os.Lstat(dst); err == nil {
		if strings.EqualFold(src, dst) {
			return fileops.Renamed, nil
		}
		return fileops.Occupied, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fileops.Failed, err
	}
	return fileops.Renamed, nil
}

func (o *Organizer) mkdirAll(dir string) error {
	if o.config.DryRun {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (o *Organizer) remove(path string) error {
	if o.config.DryRun {
		return nil
	}
	return os.Remove(path)
}

// failure turns a filesystem error into a ledger entry. A path component
// that is not a directory is structural and returned; a locked path is a
// warning unless there is no ledger to hold it.
func (o *Organizer) failure(op string, err error, e ledger.Entry) error {
	switch {
	case fileops.IsNotDirectory(err):
		return &ledger.StructuralError{Op: op, Path: e.Path, Err: err}
	case fileops.IsTransientLock(err):
		if o.ledger == nil {
			return err
		}
		e.Kind = ledger.PermissionDenied
		o.log.WithFields(logrus.Fields{"op": op, "item": e.Identity()}).Warn("access denied, skipped")
	default:
		e.Kind = ledger.IO
	}
	e.Err = err
	o.record(e)
	return nil
}

// within reports whether path is dir itself or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
