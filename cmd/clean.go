// file: cmd/clean.go
// version: 1.0.0
// guid: 2ce05827-d75e-4df7-a40e-6a842b2ab55d

package cmd

import (
	"fmt"

	"github.com/jdfalk/musort/internal/organizer"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove empty directories",
		Long: `Remove every directory below the root (and the target, when it differs)
that contains nothing but other empty directories. The root itself is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, dryRun)
			if err != nil {
				return err
			}
			defer s.Close()

			o, err := organizer.NewOrganizer(&s.cfg, tagReader(), organizer.WithLogger(s.log))
			if err != nil {
				return err
			}
			n := organizer.Cleanup(s.cfg.RootDir, o.Filter(), s.cfg.DryRun, s.log)
			if target := s.cfg.EffectiveTarget(); target != s.cfg.RootDir {
				n += organizer.Cleanup(target, o.Filter(), s.cfg.DryRun, s.log)
			}

			verb := "Removed"
			if s.cfg.DryRun {
				verb = "Would remove"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d empty directories\n", verb, n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list directories without removing them")
	return cmd
}
