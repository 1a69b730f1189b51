// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/jdfalk/musort/internal/classifier"
	"github.com/jdfalk/musort/internal/sanitize"
	"github.com/jdfalk/musort/internal/scanner"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	RootDir   string `yaml:"root_dir"`
	TargetDir string `yaml:"target_dir,omitempty"`

	// Modes
	RenameDirs       bool `yaml:"rename_dirs"`
	RenameFiles      bool `yaml:"rename_files"`
	RemoveDuplicates bool `yaml:"remove_duplicates"`
	VerifyDuplicates bool `yaml:"verify_duplicates"`
	RemoveEmpty      bool `yaml:"remove_empty"`
	SingleGenre      bool `yaml:"single_genre"`
	DryRun           bool `yaml:"dry_run"`

	// Traversal
	IncludeHidden       bool     `yaml:"include_hidden"`
	FollowSymlinks      bool     `yaml:"follow_symlinks"`
	IgnoredNames        []string `yaml:"ignored_names"`
	SupportedExtensions []string `yaml:"supported_extensions"`

	// Naming
	SeparatorPolicy      string   `yaml:"separator_policy"`
	MaxWidth             int      `yaml:"max_width"`
	ScanLimit            int      `yaml:"scan_limit"`
	NonInformativeGenres []string `yaml:"non_informative_genres"`

	// Output
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

var AppConfig Config

// Modes in mask order, most significant bit first.
var modeKeys = [4]string{"remove_duplicates", "rename_files", "remove_empty", "rename_dirs"}

// SetDefaults registers every default with viper.
func SetDefaults() {
	viper.SetDefault("root_dir", ".")
	viper.SetDefault("target_dir", "")
	viper.SetDefault("rename_dirs", true)
	viper.SetDefault("rename_files", true)
	viper.SetDefault("remove_duplicates", false)
	viper.SetDefault("verify_duplicates", false)
	viper.SetDefault("remove_empty", false)
	viper.SetDefault("single_genre", false)
	viper.SetDefault("dry_run", false)
	viper.SetDefault("include_hidden", false)
	viper.SetDefault("follow_symlinks", false)
	viper.SetDefault("ignored_names", scanner.DefaultIgnored)
	viper.SetDefault("supported_extensions", scanner.DefaultExtensions)
	viper.SetDefault("separator_policy", sanitize.PolicyAuto)
	viper.SetDefault("max_width", 50)
	viper.SetDefault("scan_limit", classifier.DefaultScanLimit)
	viper.SetDefault("non_informative_genres", []string{"Other"})
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_file", "")
}

// InitConfig initializes the application configuration
func InitConfig() error {
	SetDefaults()

	AppConfig = Config{
		RootDir:              viper.GetString("root_dir"),
		TargetDir:            viper.GetString("target_dir"),
		RenameDirs:           viper.GetBool("rename_dirs"),
		RenameFiles:          viper.GetBool("rename_files"),
		RemoveDuplicates:     viper.GetBool("remove_duplicates"),
		VerifyDuplicates:     viper.GetBool("verify_duplicates"),
		RemoveEmpty:          viper.GetBool("remove_empty"),
		SingleGenre:          viper.GetBool("single_genre"),
		DryRun:               viper.GetBool("dry_run"),
		IncludeHidden:        viper.GetBool("include_hidden"),
		FollowSymlinks:       viper.GetBool("follow_symlinks"),
		IgnoredNames:         viper.GetStringSlice("ignored_names"),
		SupportedExtensions:  viper.GetStringSlice("supported_extensions"),
		SeparatorPolicy:      viper.GetString("separator_policy"),
		MaxWidth:             viper.GetInt("max_width"),
		ScanLimit:            viper.GetInt("scan_limit"),
		NonInformativeGenres: viper.GetStringSlice("non_informative_genres"),
		LogLevel:             viper.GetString("log_level"),
		LogFile:              viper.GetString("log_file"),
		MetricsFile:          viper.GetString("metrics_file"),
	}

	// The numeric mode overrides the individual mode switches.
	if viper.IsSet("mode") {
		if err := AppConfig.ApplyModeMask(viper.GetInt("mode")); err != nil {
			return err
		}
	}
	return nil
}

// ApplyModeMask sets the four mode switches from a 4-bit mask over
// (remove_duplicates, rename_files, remove_empty, rename_dirs), most
// significant bit first. -1 enables every mode.
func (c *Config) ApplyModeMask(mask int) error {
	if mask == -1 {
		mask = 0b1111
	}
	if mask < 0 || mask > 0b1111 {
		return fmt.Errorf("mode %d out of range: want -1 or 0..15", mask)
	}
	bit := func(i int) bool { return mask&(1<<(3-i)) != 0 }
	c.RemoveDuplicates = bit(0)
	c.RenameFiles = bit(1)
	c.RemoveEmpty = bit(2)
	c.RenameDirs = bit(3)
	return nil
}

// ModeMask is the inverse of ApplyModeMask.
func (c *Config) ModeMask() int {
	mask := 0
	for i, on := range []bool{c.RemoveDuplicates, c.RenameFiles, c.RemoveEmpty, c.RenameDirs} {
		if on {
			mask |= 1 << (3 - i)
		}
	}
	return mask
}

// ModeNames lists the enabled modes in mask order.
func (c *Config) ModeNames() []string {
	var names []string
	for i, on := range []bool{c.RemoveDuplicates, c.RenameFiles, c.RemoveEmpty, c.RenameDirs} {
		if on {
			names = append(names, modeKeys[i])
		}
	}
	return names
}

// EffectiveTarget returns the directory albums are sorted into.
func (c *Config) EffectiveTarget() string {
	if c.TargetDir != "" {
		return c.TargetDir
	}
	return c.RootDir
}

// Policy resolves the configured separator policy for this platform.
func (c *Config) Policy() (sanitize.Policy, error) {
	return sanitize.PolicyByName(c.SeparatorPolicy, runtime.GOOS)
}

// Validate checks the settings a run depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.RootDir == "" {
		errs = append(errs, errors.New("root_dir is required"))
	} else if info, err := os.Stat(c.RootDir); err != nil {
		errs = append(errs, fmt.Errorf("root_dir: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("root_dir %s is not a directory", c.RootDir))
	}
	if c.TargetDir != "" {
		if info, err := os.Stat(c.TargetDir); err == nil && !info.IsDir() {
			errs = append(errs, fmt.Errorf("target_dir %s is not a directory", c.TargetDir))
		}
	}
	if c.MaxWidth < 1 {
		errs = append(errs, fmt.Errorf("max_width must be positive, got %d", c.MaxWidth))
	}
	if c.ScanLimit < 1 {
		errs = append(errs, fmt.Errorf("scan_limit must be at least 1, got %d", c.ScanLimit))
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
