// file: cmd/sort.go
// version: 1.0.0
// guid: ba9bc644-4f37-4f8e-8bf9-d75b8f92850c

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jdfalk/musort/internal/config"
	"github.com/jdfalk/musort/internal/fileops"
	"github.com/jdfalk/musort/internal/logging"
	"github.com/jdfalk/musort/internal/metadata"
	"github.com/jdfalk/musort/internal/metrics"
	"github.com/jdfalk/musort/internal/organizer"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tagReader is swapped out by tests.
var tagReader = func() metadata.TagReader { return metadata.NewDefaultReader() }

func newSortCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Reorganize the library",
		Long: `Walk the library, classify every album folder from its tags and move it
to Genre/Artist/Year - Album, renaming tracks on the way.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without touching the filesystem")
	return cmd
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what sort would do",
		Long:  `Run sort in dry-run mode and list every planned move, rename and deletion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, true)
		},
	}
}

// session is the state shared by commands that touch the library.
type session struct {
	cfg    config.Config
	log    *logrus.Logger
	closer io.Closer
	lock   *fileops.RunLock
}

func openSession(cmd *cobra.Command, dryRun bool) (*session, error) {
	cfg := config.AppConfig
	cfg.DryRun = cfg.DryRun || dryRun
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, closer, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, closer: closer}
	if !cfg.DryRun {
		lock, err := fileops.AcquireRunLock(cfg.RootDir)
		if err != nil {
			closer.Close()
			return nil, err
		}
		s.lock = lock
	}
	return s, nil
}

func (s *session) Close() {
	if err := s.lock.Release(); err != nil {
		s.log.WithError(err).Warn("failed to release run lock")
	}
	s.closer.Close()
}

func runSort(cmd *cobra.Command, dryRun bool) error {
	s, err := openSession(cmd, dryRun)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := []organizer.Option{organizer.WithLogger(s.log)}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && isTerminal(f) {
		bar := progressbar.Default(-1, "sorting")
		defer bar.Finish()
		opts = append(opts, organizer.WithProgress(bar))
	}

	o, err := organizer.NewOrganizer(&s.cfg, tagReader(), opts...)
	if err != nil {
		return err
	}
	report, runErr := o.Run()
	if report != nil {
		printReport(cmd.OutOrStdout(), report, s.cfg.DryRun)
	}
	if s.cfg.MetricsFile != "" && !s.cfg.DryRun {
		if err := metrics.WriteTextfile(s.cfg.MetricsFile); err != nil {
			s.log.WithError(err).Warn("failed to write metrics")
		}
	}
	return runErr
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
