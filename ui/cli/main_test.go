// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

//nolint:errcheck
package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/charmbracelet/log"

	"github.com/pontifex-team/pontifex/i18n"
	"github.com/pontifex-team/pontifex/internal/logging"
	"github.com/spf13/viper"
)

// setupTest isolates a test from real user configuration: viper state is
// cleared and the user config dir is pointed at a scratch directory so the
// default-config write cannot touch the developer's machine.
func setupTest(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	i18n.Init("en")
}

// executeCommand runs a cobra command with the given arguments and captures its output.
// It can optionally take an `io.Reader` to mock stdin for interactive commands.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) string {
	t.Helper()

	// Redirect stdout and stderr to a buffer so we capture log output.
	oldOut := os.Stdout
	oldErr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w
	// Redirect the charmbracelet loggers to the pipe so package-level logs
	// are captured by the test.
	log.SetOutput(w)
	logging.L.SetOutput(w)
	defer log.SetOutput(os.Stderr)
	defer logging.L.SetOutput(os.Stderr)
	defer func() {
		os.Stdout = oldOut
		os.Stderr = oldErr
	}()

	// Redirect stdin if a reader is provided
	if stdin != nil {
		oldIn := os.Stdin
		os.Stdin = stdin.(*os.File)
		defer func() {
			os.Stdin = oldIn
		}()
	}

	// Create a new root command for each test to ensure isolation
	root := NewRootCmd()
	root.SetArgs(args)

	// Execute the command
	if err := root.Execute(); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	// Read the output from the buffer
	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read command output: %v", err)
	}

	return buf.String()
}

// executeCommandErr is executeCommand for tests that expect the command to
// fail; it returns the execution error instead of failing the test.
func executeCommandErr(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

// pipeWithContent builds an *os.File stdin replacement holding the given
// content.
func pipeWithContent(t *testing.T, content string) *os.File {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	if _, err := w.WriteString(content); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	w.Close()
	return r
}

func TestVersionCommand(t *testing.T) {
	setupTest(t)

	output := executeCommand(t, nil, "version")
	if !strings.Contains(output, "version:") {
		t.Errorf("version output missing version line: %q", output)
	}
}

func TestDebugCommandShowsSettings(t *testing.T) {
	setupTest(t)

	output := executeCommand(t, nil, "debug")
	if !strings.Contains(output, "--- PONTIFEX DEBUG ---") {
		t.Errorf("debug output missing header: %q", output)
	}
	if !strings.Contains(output, "language") {
		t.Errorf("debug output missing language setting: %q", output)
	}
}

func TestDebugCommandWithExplicitConfig(t *testing.T) {
	setupTest(t)

	configPath := filepath.Join(t.TempDir(), "pontifex.yaml")
	if err := os.WriteFile(configPath, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	output := executeCommand(t, nil, "debug", "--config", configPath)
	if !strings.Contains(output, configPath) {
		t.Errorf("debug output does not show used config file: %q", output)
	}
}

func TestHelpListsCommands(t *testing.T) {
	setupTest(t)

	output := executeCommand(t, nil, "--help")
	for _, want := range []string{"encrypt", "decrypt", "keygen", "key"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q: %q", want, output)
		}
	}
}
