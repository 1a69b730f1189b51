// file: internal/organizer/cleanup.go
// version: 1.0.0
// guid: 13f46c4d-6e3f-4685-abbf-2e81819ecb0d

package organizer

import (
	"os"
	"path/filepath"

	"github.com/jdfalk/musort/internal/scanner"
	"github.com/sirupsen/logrus"
)

// Cleanup removes every directory below root that is empty once its own
// empty subdirectories are gone. root itself is kept. Only directories the
// filter accepts are visited, and symlinks are never followed or removed.
// Removal failures are ignored. It returns the number of directories
// removed, or that would be removed in a dry run.
func Cleanup(root string, filter *scanner.Filter, dryRun bool, log logrus.FieldLogger) int {
	c := cleaner{filter: filter, dryRun: dryRun, log: log}
	entries, err := os.ReadDir(root)
	if err != nil {
		log.WithError(err).WithField("dir", root).Warn("cleanup skipped")
		return 0
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() && filter.ValidDir(root, e) {
			n, _ := c.clean(filepath.Join(root, e.Name()))
			removed += n
		}
	}
	return removed
}

type cleaner struct {
	filter *scanner.Filter
	dryRun bool
	log    logrus.FieldLogger
}

// clean empties dir bottom-up and reports how many directories went and
// whether dir itself did.
func (c cleaner) clean(dir string) (int, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, false
	}

	removed, empty := 0, true
	for _, e := range entries {
		if e.IsDir() && c.filter.ValidDir(dir, e) {
			n, gone := c.clean(filepath.Join(dir, e.Name()))
			removed += n
			if gone {
				continue
			}
		}
		empty = false
	}
	if !empty {
		return removed, false
	}

	log := c.log.WithField("dir", dir)
	if c.dryRun {
		log.Info("would remove empty directory")
		return removed + 1, true
	}
	if err := os.Remove(dir); err != nil {
		log.WithError(err).Debug("directory not removed")
		return removed, false
	}
	log.Info("removed empty directory")
	return removed + 1, true
}
