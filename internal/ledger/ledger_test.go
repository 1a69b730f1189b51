// file: internal/ledger/ledger_test.go
// version: 1.0.0
// guid: 678cf9e2-0eb6-489a-8625-e080b17b6c43

package ledger

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerKeepsOrder(t *testing.T) {
	l := New()
	l.Record(Entry{Kind: TagRead, Path: "/a/01.mp3", Err: errors.New("bad frame")})
	l.Record(Entry{Kind: Conflict, Artist: "Blind Guardian", Album: "Imaginations"})
	l.Record(Entry{Kind: Conflict, Path: "/b/02.mp3"})

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "/a/01.mp3", entries[0].Identity())
	assert.Equal(t, "bad frame", entries[0].Detail())
	assert.Equal(t, "Blind Guardian - Imaginations", entries[1].Identity())
	assert.Equal(t, "", entries[1].Detail())
	assert.Equal(t, "/b/02.mp3", entries[2].Identity())

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Count(Conflict))
	assert.Equal(t, 0, l.Count(PermissionDenied))

	entries[0].Path = "mutated"
	assert.Equal(t, "/a/01.mp3", l.Entries()[0].Path)
}

func TestNilLedgerDiscards(t *testing.T) {
	var l *Ledger
	l.Record(Entry{Kind: IO, Path: "/x"})
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Entries())
	assert.Zero(t, l.Count(IO))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TagReadError", TagRead.String())
	assert.Equal(t, "Conflict", Conflict.String())
	assert.Equal(t, "PermissionDenied", PermissionDenied.String())
	assert.Equal(t, "IOError", IO.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestStructuralError(t *testing.T) {
	err := fmt.Errorf("move album: %w", &StructuralError{Op: "mkdir", Path: "/music/Rock", Err: syscall.ENOTDIR})
	assert.True(t, IsStructural(err))
	assert.ErrorIs(t, err, syscall.ENOTDIR)
	assert.Contains(t, err.Error(), "mkdir /music/Rock")
	assert.False(t, IsStructural(errors.New("plain")))
}
