// file: internal/ledger/ledger.go
// version: 1.0.0
// guid: c96078d8-f7ce-4fcc-86d1-3bb357968a62

// Package ledger collects the non-fatal problems of a run in the order they
// happened.
package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a ledger entry.
type Kind int

const (
	// TagRead is a file whose tags could not be parsed.
	TagRead Kind = iota + 1
	// Conflict is a move or rename whose destination already existed.
	Conflict
	// PermissionDenied is a move skipped because the path was locked.
	PermissionDenied
	// IO is any other per-item filesystem failure.
	IO
)

func (k Kind) String() string {
	switch k {
	case TagRead:
		return "TagReadError"
	case Conflict:
		return "Conflict"
	case PermissionDenied:
		return "PermissionDenied"
	case IO:
		return "IOError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is one recorded problem. Directory conflicts carry the album
// identity; everything else carries a path.
type Entry struct {
	Kind   Kind
	Path   string
	Artist string
	Album  string
	Err    error
}

// Identity returns "artist - album" when the entry names an album and the
// path otherwise.
func (e Entry) Identity() string {
	if e.Artist == "" && e.Album == "" {
		return e.Path
	}
	return strings.TrimSpace(e.Artist + " - " + e.Album)
}

// Detail returns the error text, if any.
func (e Entry) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Ledger is an append-only list of entries. A nil *Ledger is valid and
// discards everything; callers use that to mean "no ledger available".
type Ledger struct {
	entries []Entry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Record appends e.
func (l *Ledger) Record(e Entry) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the recorded entries in order.
func (l *Ledger) Entries() []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Count returns how many entries have kind k.
func (l *Ledger) Count(k Kind) int {
	n := 0
	if l == nil {
		return n
	}
	for _, e := range l.entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// StructuralError means the target tree is not shaped the way a run
// expects, for example a file sitting where a directory must go. It stops
// the run.
type StructuralError struct {
	Op   string
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// IsStructural reports whether err wraps a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
