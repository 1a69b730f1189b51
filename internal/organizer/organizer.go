// file: internal/organizer/organizer.go
// version: 2.0.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package organizer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jdfalk/musort/internal/cache"
	"github.com/jdfalk/musort/internal/classifier"
	"github.com/jdfalk/musort/internal/config"
	"github.com/jdfalk/musort/internal/ledger"
	"github.com/jdfalk/musort/internal/logging"
	"github.com/jdfalk/musort/internal/metadata"
	"github.com/jdfalk/musort/internal/metrics"
	"github.com/jdfalk/musort/internal/models"
	"github.com/jdfalk/musort/internal/naming"
	"github.com/jdfalk/musort/internal/sanitize"
	"github.com/jdfalk/musort/internal/scanner"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Progress receives one tick per album folder. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Describe(description string)
	Add(num int) error
}

type nopProgress struct{}

func (nopProgress) Describe(string) {}
func (nopProgress) Add(int) error  { return nil }

// Organizer sorts album folders below a root into genre/artist/album
// directories and renames their tracks.
type Organizer struct {
	config     *config.Config
	reader     metadata.TagReader
	filter     *scanner.Filter
	namer      *naming.Namer
	classifier *classifier.Classifier
	genres     *cache.GenreCache
	ledger     *ledger.Ledger
	log        logrus.FieldLogger
	progress   Progress

	root   string
	target string

	runID   string
	stats   Stats
	actions []Action
	visited scanner.Visited
}

// Option customises an Organizer.
type Option func(*Organizer)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Organizer) { o.log = l }
}

// WithLedger replaces the run's ledger. Passing nil means no ledger is
// available: problems are only logged, and a locked path aborts the run.
func WithLedger(l *ledger.Ledger) Option {
	return func(o *Organizer) { o.ledger = l }
}

// WithProgress reports per-folder progress.
func WithProgress(p Progress) Option {
	return func(o *Organizer) {
		if p != nil {
			o.progress = p
		}
	}
}

// WithGenreCache shares a genre cache across runs. By default every run
// gets a fresh one following cfg.SingleGenre.
func WithGenreCache(g *cache.GenreCache) Option {
	return func(o *Organizer) { o.genres = g }
}

// NewOrganizer creates a new organizer instance
func NewOrganizer(cfg *config.Config, reader metadata.TagReader, opts ...Option) (*Organizer, error) {
	if cfg == nil || reader == nil {
		return nil, fmt.Errorf("organizer needs a config and a tag reader")
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", cfg.RootDir, err)
	}
	target, err := filepath.Abs(cfg.EffectiveTarget())
	if err != nil {
		return nil, fmt.Errorf("resolve target %s: %w", cfg.EffectiveTarget(), err)
	}

	o := &Organizer{
		config:   cfg,
		reader:   reader,
		ledger:   ledger.New(),
		log:      logging.Discard(),
		progress: nopProgress{},
		root:     root,
		target:   target,
		filter: scanner.NewFilter(scanner.Options{
			IncludeHidden:  cfg.IncludeHidden,
			FollowSymlinks: cfg.FollowSymlinks,
			Ignored:        cfg.IgnoredNames,
			Extensions:     cfg.SupportedExtensions,
		}),
		namer: naming.New(sanitize.New(policy), cfg.MaxWidth, cfg.NonInformativeGenres),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.genres == nil {
		o.genres = cache.NewGenreCache(cfg.SingleGenre)
	}
	o.classifier = classifier.New(reader, o.genres, cfg.ScanLimit)
	return o, nil
}

// TargetDir returns where an album with these tags belongs.
func (o *Organizer) TargetDir(a models.Album) string {
	return o.namer.TargetDir(o.target, a)
}

// Filter returns the traversal filter derived from the config.
func (o *Organizer) Filter() *scanner.Filter {
	return o.filter
}

// Ledger returns the ledger problems are recorded in, possibly nil.
func (o *Organizer) Ledger() *ledger.Ledger {
	return o.ledger
}

// Run walks the root once, depth first with children before parents, then
// removes empty directories when configured. Per-item problems land in the
// ledger; only a StructuralError stops the walk and is returned alongside
// the partial report.
func (o *Organizer) Run() (*Report, error) {
	started := time.Now()
	metrics.Register()
	o.runID = ulid.Make().String()
	o.stats = Stats{}
	o.actions = nil
	o.visited = scanner.Visited{}
	o.visited.Enter(o.root)

	log := o.log.WithFields(logrus.Fields{"run": o.runID, "root": o.root, "target": o.target})
	log.WithField("dry_run", o.config.DryRun).Info("run started")

	var runErr error
	if o.config.RenameDirs || o.config.RenameFiles {
		runErr = o.sortRoot()
	}
	if runErr == nil && o.config.RemoveEmpty {
		o.stats.EmptyRemoved += Cleanup(o.root, o.filter, o.config.DryRun, o.log)
		if o.target != o.root {
			o.stats.EmptyRemoved += Cleanup(o.target, o.filter, o.config.DryRun, o.log)
		}
		if !o.config.DryRun {
			metrics.AddEmptyDirsRemoved(o.stats.EmptyRemoved)
		}
	}

	report := o.report(started)
	metrics.ObserveRunDuration(report.Duration)
	if runErr != nil {
		log.WithError(runErr).Error("run aborted")
		return report, runErr
	}
	log.WithFields(logrus.Fields{
		"folders":  o.stats.Folders,
		"moved":    o.stats.DirsMoved,
		"renamed":  o.stats.FilesRenamed,
		"problems": len(report.Entries),
	}).Info("run finished")
	return report, nil
}

// sortRoot descends into the root's subdirectories. The root itself is
// never classified or moved.
func (o *Organizer) sortRoot() error {
	listing, err := o.filter.List(o.root)
	if err != nil {
		return fmt.Errorf("read root: %w", err)
	}
	for _, dir := range listing.Dirs {
		if err := o.walk(dir); err != nil {
			return err
		}
	}
	return nil
}

func (o *Organizer) walk(dir string) error {
	if !o.visited.Enter(dir) {
		return nil
	}
	listing, err := o.filter.List(dir)
	if err != nil {
		o.record(ledger.Entry{Kind: ledger.IO, Path: dir, Err: err})
		return nil
	}
	for _, sub := range listing.Dirs {
		if err := o.walk(sub); err != nil {
			return err
		}
	}
	if len(listing.Music) == 0 {
		return nil
	}
	return o.processFolder(dir, listing.Music)
}

// processFolder classifies dir, moves it and renames its tracks as
// configured.
func (o *Organizer) processFolder(dir string, music []string) error {
	o.stats.Folders++
	o.progress.Describe(filepath.Base(dir))
	defer func() { _ = o.progress.Add(1) }()

	res := o.classifier.Classify(dir, music)
	failed := make(map[string]struct{}, len(res.Failures))
	for _, f := range res.Failures {
		failed[filepath.Base(f.Path)] = struct{}{}
		o.record(ledger.Entry{Kind: ledger.TagRead, Path: f.Path, Err: f.Err})
	}
	if !res.Readable() {
		o.log.WithField("dir", dir).Warn("no readable tags, folder skipped")
		return nil
	}
	o.stats.Classified++
	if !o.config.DryRun {
		metrics.IncFoldersClassified()
	}

	current := dir
	if o.config.RenameDirs {
		moved, err := o.moveAlbum(dir, res.Album)
		if err != nil || moved == "" {
			return err
		}
		current = moved
		o.visited.Enter(current)
	}
	if o.config.RenameFiles {
		return o.renameTracks(current, failed)
	}
	return nil
}

// record appends e to the ledger and logs it.
func (o *Organizer) record(e ledger.Entry) {
	switch e.Kind {
	case ledger.Conflict:
		o.stats.Conflicts++
	case ledger.TagRead:
		o.stats.TagFailures++
	}
	o.ledger.Record(e)
	if !o.config.DryRun {
		metrics.IncLedgerEntry(e.Kind.String())
	}
	entry := o.log.WithFields(logrus.Fields{"kind": e.Kind.String(), "item": e.Identity()})
	if e.Err != nil {
		entry = entry.WithError(e.Err)
	}
	entry.Warn("problem recorded")
}

func (o *Organizer) addAction(kind ActionKind, from, to string) {
	o.actions = append(o.actions, Action{Kind: kind, From: from, To: to})
}
