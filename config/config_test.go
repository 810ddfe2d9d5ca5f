// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/pontifex-team/pontifex/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func resetViper() {
	// Reset global viper state between tests
	viper.Reset()
}

func testDefaults() map[string]any {
	return map[string]any{
		"language":  "en",
		"keys.file": "",
		"clipboard": false,
	}
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	tmp := t.TempDir()
	// Force user config dir to tmp by setting XDG_CONFIG_HOME
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	resetViper()
	defer resetViper()

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
		}
	}
	if got.Language != "en" {
		t.Fatalf("expected default language en, got %q", got.Language)
	}
	if got.Clipboard {
		t.Fatalf("expected clipboard default false")
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	// Create the directory but write a zero-length file
	cfgDir := filepath.Join(tmp, "pontifex")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	emptyPath := filepath.Join(cfgDir, "pontifex.yaml")
	f, err := os.Create(emptyPath)
	if err != nil {
		t.Fatalf("create empty file: %v", err)
	}
	_ = f.Close()

	resetViper()
	defer resetViper()

	_, err = cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), nil)
	if err == nil {
		t.Fatalf("expected ConfigFileNotFoundError for empty candidate, got nil")
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "language: de\nkeys:\n  file: /tmp/deck.key\nclipboard: true\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	resetViper()
	defer resetViper()

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Keys.File != "/tmp/deck.key" {
		t.Fatalf("expected key file from config, got %q", got.Keys.File)
	}
	if !got.Clipboard {
		t.Fatalf("expected clipboard true")
	}
}

func TestLoadConfig_EnvVarParsing(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	// Set environment variables with PONTIFEX_ prefix
	_ = os.Setenv("PONTIFEX_LANGUAGE", "de")
	_ = os.Setenv("PONTIFEX_KEYS_FILE", "/tmp/env.key")
	defer func() {
		_ = os.Unsetenv("PONTIFEX_LANGUAGE")
		_ = os.Unsetenv("PONTIFEX_KEYS_FILE")
	}()

	resetViper()
	defer resetViper()

	// LoadConfig returns ConfigFileNotFoundError when no file is used,
	// but env vars should still be loaded.
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got.Language != "de" {
		t.Fatalf("expected language from env, got %q", got.Language)
	}
	if got.Keys.File != "/tmp/env.key" {
		t.Fatalf("expected key file from env, got %q", got.Keys.File)
	}
}

func TestLoadConfig_MergesLegacyDotfile(t *testing.T) {
	tmp := t.TempDir()
	// Change working dir to tmp so the legacy file is in CWD
	origWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(origWd) }()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	// Ensure user config dir points at tmp so tests are isolated from
	// any real user config that may exist on the runner.
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	yaml := "language: de\n"
	if err := os.WriteFile(filepath.Join(tmp, ".pontifex.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write legacy: %v", err)
	}

	resetViper()
	defer resetViper()

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got.Language != "de" {
		t.Fatalf("expected language from legacy dotfile, got %q", got.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	resetViper()
	defer resetViper()

	c := cfg.Config{}
	c.Language = "en"
	c.Keys.File = "./deck.key"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}

	// The written file must load back.
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, testDefaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig of written file: %v", err)
	}
	if got.Keys.File != "./deck.key" {
		t.Fatalf("expected keys.file roundtrip, got %q", got.Keys.File)
	}
}
