// file: internal/logging/logging.go
// version: 1.0.0
// guid: 6b451849-698e-424d-aaeb-49dd382e375d

// Package logging builds the logrus logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a text logger at level writing to w and, when file is set,
// to that file as well. An unknown level falls back to info with a
// warning. The returned Closer releases the log file.
func New(w io.Writer, level, file string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var closer io.Closer = nopCloser{}
	out := w
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(w, f)
		closer = f
	}
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.Warnf("invalid log-level %s, set to %v", level, lvl)
	}
	logger.SetLevel(lvl)
	return logger, closer, nil
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
