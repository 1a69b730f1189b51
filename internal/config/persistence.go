// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default config file name in the home directory.
const ConfigFileName = ".musort.yaml"

// ConfigFilePath returns the config file viper loaded, or the default
// location in the user's home directory.
func ConfigFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigFileName)
}

// SaveConfigToFile writes c as YAML to path, creating parent directories.
func SaveConfigToFile(c Config, path string) error {
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logrus.WithField("path", path).Info("configuration saved")
	return nil
}

// LoadConfigFromFile reads a YAML file written by SaveConfigToFile. Keys
// missing from the file keep their zero value.
func LoadConfigFromFile(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return c, nil
}
