// file: internal/config/config_test.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitConfig tests configuration initialization with defaults
func TestInitConfig(t *testing.T) {
	// Arrange
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Act
	require.NoError(t, InitConfig())

	// Assert
	assert.Equal(t, ".", AppConfig.RootDir)
	assert.True(t, AppConfig.RenameDirs)
	assert.True(t, AppConfig.RenameFiles)
	assert.False(t, AppConfig.RemoveDuplicates)
	assert.False(t, AppConfig.RemoveEmpty)
	assert.False(t, AppConfig.SingleGenre)
	assert.False(t, AppConfig.IncludeHidden)
	assert.False(t, AppConfig.FollowSymlinks)
	assert.Equal(t, "auto", AppConfig.SeparatorPolicy)
	assert.Equal(t, 50, AppConfig.MaxWidth)
	assert.Equal(t, 5, AppConfig.ScanLimit)
	assert.Equal(t, []string{"Other"}, AppConfig.NonInformativeGenres)
	assert.Contains(t, AppConfig.IgnoredNames, "__pycache__")
	assert.Contains(t, AppConfig.SupportedExtensions, ".flac")
	assert.Equal(t, "info", AppConfig.LogLevel)
}

func TestInitConfigModeOverridesSwitches(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("rename_dirs", false)
	viper.Set("mode", 0b1010)
	require.NoError(t, InitConfig())

	assert.True(t, AppConfig.RemoveDuplicates)
	assert.False(t, AppConfig.RenameFiles)
	assert.True(t, AppConfig.RemoveEmpty)
	assert.False(t, AppConfig.RenameDirs)

	viper.Set("mode", 99)
	assert.Error(t, InitConfig())
}

func TestApplyModeMask(t *testing.T) {
	tests := []struct {
		mask  int
		names []string
	}{
		{-1, []string{"remove_duplicates", "rename_files", "remove_empty", "rename_dirs"}},
		{0, nil},
		{3, []string{"remove_empty", "rename_dirs"}},
		{8, []string{"remove_duplicates"}},
		{0b0101, []string{"rename_files", "rename_dirs"}},
	}
	for _, tt := range tests {
		var c Config
		require.NoError(t, c.ApplyModeMask(tt.mask))
		assert.Equal(t, tt.names, c.ModeNames(), "mask %d", tt.mask)
		if tt.mask >= 0 {
			assert.Equal(t, tt.mask, c.ModeMask())
		}
	}

	var c Config
	assert.Error(t, c.ApplyModeMask(16))
	assert.Error(t, c.ApplyModeMask(-2))
}

func TestEffectiveTarget(t *testing.T) {
	c := Config{RootDir: "/music/incoming"}
	assert.Equal(t, "/music/incoming", c.EffectiveTarget())
	c.TargetDir = "/music/library"
	assert.Equal(t, "/music/library", c.EffectiveTarget())
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	good := Config{RootDir: dir, MaxWidth: 50, ScanLimit: 5, SeparatorPolicy: "auto"}
	require.NoError(t, good.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing root", func(c *Config) { c.RootDir = "" }},
		{"root does not exist", func(c *Config) { c.RootDir = filepath.Join(dir, "nope") }},
		{"root is a file", func(c *Config) { c.RootDir = file }},
		{"target is a file", func(c *Config) { c.TargetDir = file }},
		{"zero width", func(c *Config) { c.MaxWidth = 0 }},
		{"zero scan limit", func(c *Config) { c.ScanLimit = 0 }},
		{"unknown policy", func(c *Config) { c.SeparatorPolicy = "sideways" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
