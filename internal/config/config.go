// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Passforge settings from defaults, YAML files,
// PASSFORGE_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration. Generation rules themselves are
// not configured here; they live in the settings repository.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`

	Language string `mapstructure:"language" yaml:"language"`

	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`

	Generator struct {
		MaxFilterAttempts  int `mapstructure:"max_filter_attempts" yaml:"max_filter_attempts"`
		MaxEntropyAttempts int `mapstructure:"max_entropy_attempts" yaml:"max_entropy_attempts"`
		BatchWorkers       int `mapstructure:"batch_workers" yaml:"batch_workers"`
	} `mapstructure:"generator" yaml:"generator"`

	History struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"history" yaml:"history"`
}

// Defaults returns the built-in configuration values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":                  "sqlite",
		"database.dsn":                   "./passforge.db",
		"language":                       "en",
		"log.level":                      "warn",
		"generator.max_filter_attempts":  100,
		"generator.max_entropy_attempts": 16,
		"generator.batch_workers":        4,
		"history.enabled":                true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passforge")
		default: // Linux, macOS, etc.
			configDir = "/etc/passforge"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passforge")
	}

	return filepath.Join(configDir, "passforge.yaml"), nil
}

// LoadConfig resolves configuration into T. A missing (or empty) config file
// is reported as viper.ConfigFileNotFoundError together with a T populated
// from defaults, environment and flags, so callers can continue and write a
// default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passforge")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if used := v.ConfigFileUsed(); isEmptyFile(used) {
		notFound = viper.ConfigFileNotFoundError{}
	}

	v.SetEnvPrefix("passforge")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && st.Size() == 0
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the DSN may carry database credentials.
	return os.WriteFile(path, data, 0600)
}
