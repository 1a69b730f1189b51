// file: cmd/root_test.go
// version: 2.0.0
// guid: 7eae8d0c-7fda-4f45-8f73-5d1e0c7c9f1a

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/musort/internal/config"
	"github.com/jdfalk/musort/internal/metadata"
	"github.com/jdfalk/musort/internal/testutil"
	"github.com/spf13/viper"
)

// execute runs the command line with an isolated home directory and the
// fake tag reader, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	origConfig := config.AppConfig
	origReader := tagReader
	t.Cleanup(func() {
		config.AppConfig = origConfig
		tagReader = origReader
		viper.Reset()
	})
	tagReader = func() metadata.TagReader { return testutil.ContentReader{} }

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		t.Logf("stderr: %s", stderr.String())
	}
	return stdout.String(), err
}

func TestInitConfigDefaults(t *testing.T) {
	if _, err := execute(t, "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if config.AppConfig.MaxWidth != 50 {
		t.Errorf("expected max width 50, got %d", config.AppConfig.MaxWidth)
	}
	if !config.AppConfig.RenameDirs || !config.AppConfig.RenameFiles {
		t.Error("expected rename modes on by default")
	}
	if config.AppConfig.RemoveDuplicates || config.AppConfig.RemoveEmpty {
		t.Error("expected destructive modes off by default")
	}
}

func TestInitConfigUsesHomeConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, config.ConfigFileName), []byte("max_width: 20\nsingle_genre: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	root := newRootCmd()
	t.Cleanup(viper.Reset)
	origConfig := config.AppConfig
	defer func() { config.AppConfig = origConfig }()
	t.Setenv("HOME", home)

	if err := initConfig(root.PersistentFlags(), ""); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	if config.AppConfig.MaxWidth != 20 {
		t.Errorf("expected max width from home config, got %d", config.AppConfig.MaxWidth)
	}
	if !config.AppConfig.SingleGenre {
		t.Error("expected single_genre from home config")
	}
}

func TestInitConfigFlagBeatsFileBeatsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "musort.yaml")
	if err := os.WriteFile(path, []byte("max_width: 20\nscan_limit: 9\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := execute(t, "--config", path, "--max-width", "30", "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if config.AppConfig.MaxWidth != 30 {
		t.Errorf("expected flag to win, got %d", config.AppConfig.MaxWidth)
	}
	if config.AppConfig.ScanLimit != 9 {
		t.Errorf("expected file value, got %d", config.AppConfig.ScanLimit)
	}
}

func TestInitConfigEnvironment(t *testing.T) {
	t.Setenv("MUSORT_SCAN_LIMIT", "3")
	t.Setenv("MUSORT_SEPARATOR_POLICY", "dashes")

	if _, err := execute(t, "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if config.AppConfig.ScanLimit != 3 {
		t.Errorf("expected scan limit from env, got %d", config.AppConfig.ScanLimit)
	}
	if config.AppConfig.SeparatorPolicy != "dashes" {
		t.Errorf("expected separator from env, got %q", config.AppConfig.SeparatorPolicy)
	}
}

func TestInitConfigMissingFile(t *testing.T) {
	if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "config", "show"); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestModeFlagOverridesSwitches(t *testing.T) {
	if _, err := execute(t, "--mode", "10", "--rename-files=false", "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	c := config.AppConfig
	if !c.RemoveDuplicates || c.RenameFiles || !c.RemoveEmpty || c.RenameDirs {
		t.Errorf("mode 10 should enable remove_duplicates and remove_empty only, got %+v", c)
	}
}

func TestModeFlagOutOfRange(t *testing.T) {
	if _, err := execute(t, "--mode", "16", "config", "show"); err == nil {
		t.Fatal("expected error for mode 16")
	}
}
