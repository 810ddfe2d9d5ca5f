// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration schema.
type Config struct {
	Language  string
	Keys      KeysConfig
	Clipboard bool
}

// KeysConfig groups key handling settings.
type KeysConfig struct {
	// File is the default key file consulted when no key source is
	// given on the command line.
	File string
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Pontifex")
		default: // Linux, macOS, etc.
			configDir = "/etc/pontifex"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "pontifex")
	}

	return filepath.Join(configDir, "pontifex.yaml"), nil
}

// LoadConfig builds a configuration from defaults, config file, environment
// and command-line flags, in ascending precedence. It operates on the global
// viper so later viper.Set calls and the debug command's dump stay in sync
// with what was loaded.
//
// A missing (or empty) config file is not fatal: the returned value is fully
// usable and the viper.ConfigFileNotFoundError is passed back alongside it so
// callers can decide to write a default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.GetViper()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search: pontifex.yaml in the explicit --config path,
	// the user config dir, the system config dir, then the current dir.
	v.SetConfigName("pontifex")
	v.SetConfigType("yaml")

	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 3. Read in the primary config file. Not-found is remembered, not
	// returned yet, so env and flags below still apply.
	var notFoundErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
		notFoundErr = err
	} else if used := v.ConfigFileUsed(); used != "" {
		// A zero-length candidate counts as not found so first runs with a
		// touched-but-empty file still get a default config written.
		if info, statErr := os.Stat(used); statErr == nil && info.Size() == 0 {
			notFoundErr = viper.ConfigFileNotFoundError{}
		}
	}

	// 4. For backward compatibility, check for and merge `.pontifex.yaml`
	// in the current directory.
	mergeLegacyConfig(v)

	// 5. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("pontifex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 6. Command-line flags take highest precedence.
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFoundErr
}

// mergeLegacyConfig checks for a `.pontifex.yaml` file in the current
// directory and merges it into the viper configuration if found. Early
// releases kept their config in that dotfile.
func mergeLegacyConfig(v *viper.Viper) {
	legacyConfigFile := ".pontifex.yaml"
	if _, err := os.Stat(legacyConfigFile); err == nil {
		v.SetConfigFile(legacyConfigFile)
		// MergeInConfig only errors on a malformed file here; ignore it so
		// a broken legacy file cannot take down startup.
		_ = v.MergeInConfig()
		// Reset the config file path to avoid side effects.
		v.SetConfigFile("")
	}
}

// WriteConfigFile persists a configuration to the user or system config
// path, creating the directory as needed.
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

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
