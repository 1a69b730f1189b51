// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jdfalk/musort/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"dir":               "root_dir",
	"target":            "target_dir",
	"mode":              "mode",
	"rename-dirs":       "rename_dirs",
	"rename-files":      "rename_files",
	"remove-duplicates": "remove_duplicates",
	"verify-duplicates": "verify_duplicates",
	"remove-empty":      "remove_empty",
	"single-genre":      "single_genre",
	"include-hidden":    "include_hidden",
	"follow-symlinks":   "follow_symlinks",
	"ignore":            "ignored_names",
	"separator":         "separator_policy",
	"max-width":         "max_width",
	"scan-limit":        "scan_limit",
	"log-level":         "log_level",
	"log-file":          "log_file",
	"metrics-file":      "metrics_file",
}

// newRootCmd builds the command tree. A fresh tree per Execute keeps flag
// state from leaking between invocations.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "musort",
		Short: "Sort a music library into Genre/Artist/Year - Album folders",
		Long: `musort reads the tags of your music files and reorganizes the library
into Genre/Artist/Year - Album directories with "NN - Title" file names.

Conflicts and unreadable files never stop a run; they are listed in a
summary at the end.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.Root().PersistentFlags(), cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.ConfigFileName+")")
	flags.String("dir", ".", "root directory of the music library")
	flags.String("target", "", "directory to sort albums into (default is the root directory)")
	flags.Int("mode", -1, "mode mask over remove-duplicates, rename-files, remove-empty, rename-dirs (MSB first); -1 enables all")
	flags.Bool("rename-dirs", true, "move album folders to Genre/Artist/Year - Album")
	flags.Bool("rename-files", true, "rename tracks to NN - Title")
	flags.Bool("remove-duplicates", false, "delete sources whose target already exists")
	flags.Bool("verify-duplicates", false, "only delete duplicate files whose content matches")
	flags.Bool("remove-empty", false, "remove empty directories after sorting")
	flags.Bool("single-genre", false, "keep every album of an artist under the first genre seen")
	flags.Bool("include-hidden", false, "descend into hidden directories and sort hidden files")
	flags.Bool("follow-symlinks", false, "follow symbolic links")
	flags.StringSlice("ignore", nil, "directory names to skip (case insensitive)")
	flags.String("separator", "auto", "how to replace '/' in tags: auto, portable, linux or dashes")
	flags.Int("max-width", 50, "maximum rendered width of a path component")
	flags.Int("scan-limit", 5, "maximum number of tracks read per folder")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write logs to this file")
	flags.String("metrics-file", "", "write run metrics in Prometheus textfile format")

	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

// initConfig layers flags, environment and the config file into
// config.AppConfig.
func initConfig(flags *pflag.FlagSet, cfgFile string) error {
	viper.Reset()
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(strings.TrimSuffix(config.ConfigFileName, ".yaml"))
	}

	viper.SetEnvPrefix("MUSORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return config.InitConfig()
}
