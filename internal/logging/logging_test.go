// file: internal/logging/logging_test.go
// version: 1.0.0
// guid: ff2dfe43-949f-4b94-849b-2616bd031595

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToBufferAndFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "musort.log")

	logger, closer, err := New(&buf, "debug", file)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("to", "/music/Rock").Info("moved album")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "moved album")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to=/music/Rock")
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(&buf, "loud", "")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "invalid log-level loud")
}

func TestNewBadLogFile(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, "info", filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	Discard().Error("nobody hears this")
}
