// file: internal/organizer/report.go
// version: 1.0.0
// guid: 742c1405-6818-4715-b303-6ce6fcfcc04a

package organizer

import (
	"time"

	"github.com/jdfalk/musort/internal/ledger"
)

// ActionKind names a filesystem change made (or planned) by a run.
type ActionKind string

const (
	ActionMoveDir    ActionKind = "move"
	ActionRenameFile ActionKind = "rename"
	ActionDelete     ActionKind = "delete"
)

// Action is one filesystem change. To is empty for deletions.
type Action struct {
	Kind ActionKind
	From string
	To   string
}

// Stats counts what a run did.
type Stats struct {
	Folders           int
	Classified        int
	DirsMoved         int
	FilesRenamed      int
	DuplicatesRemoved int
	Conflicts         int
	TagFailures       int
	EmptyRemoved      int
}

// Report summarises a run.
type Report struct {
	RunID    string
	Root     string
	Target   string
	DryRun   bool
	Started  time.Time
	Duration time.Duration
	Stats    Stats
	Actions  []Action
	Entries  []ledger.Entry
}

// HasProblems reports whether anything was recorded in the ledger.
func (r *Report) HasProblems() bool {
	return len(r.Entries) > 0
}

func (o *Organizer) report(started time.Time) *Report {
	actions := make([]Action, len(o.actions))
	copy(actions, o.actions)
	return &Report{
		RunID:    o.runID,
		Root:     o.root,
		Target:   o.target,
		DryRun:   o.config.DryRun,
		Started:  started,
		Duration: time.Since(started),
		Stats:    o.stats,
		Actions:  actions,
		Entries:  o.ledger.Entries(),
	}
}
