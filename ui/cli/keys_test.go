// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontifex-team/pontifex/core/keys"
)

func TestKeygenWritesKeyFile(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "deck.key")
	output := executeCommand(t, nil, "keygen", keyPath)

	if !strings.Contains(output, keyPath) {
		t.Errorf("keygen output does not mention the file: %q", output)
	}
	// The weak generator warning always fires.
	if !strings.Contains(output, "shuffle") {
		t.Errorf("keygen output missing weak generator warning: %q", output)
	}

	if _, err := keys.Load(keyPath); err != nil {
		t.Errorf("generated key file does not load back: %v", err)
	}
}

func TestKeygenNumericToStdout(t *testing.T) {
	setupTest(t)

	output := executeCommand(t, nil, "keygen", "--numeric")
	found := false
	for _, line := range strings.Split(output, "\n") {
		if len(strings.Fields(line)) == 54 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected a 54-number line in output: %q", output)
	}
}

func TestKeygenRefusesOverwriteWithoutConfirmation(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "deck.key")
	if err := keys.Identity().Save(keyPath, false); err != nil {
		t.Fatalf("save key: %v", err)
	}

	stdin := pipeWithContent(t, "n\n")
	output := executeCommand(t, stdin, "keygen", keyPath)
	if !strings.Contains(strings.ToLower(output), "abort") {
		t.Errorf("expected aborted overwrite, got: %q", output)
	}

	k, err := keys.Load(keyPath)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if !k.Equal(keys.Identity()) {
		t.Errorf("key file was overwritten despite declined confirmation")
	}
}

func TestKeyShowCardCodes(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "deck.key")
	if err := keys.Identity().Save(keyPath, false); err != nil {
		t.Fatalf("save key: %v", err)
	}

	output := executeCommand(t, nil, "key", "show", keyPath)
	for _, want := range []string{"AC", "KS", "J0", "J1", "53"} {
		if !strings.Contains(output, want) {
			t.Errorf("key show output missing %q: %q", want, output)
		}
	}
}

func TestKeyShowNumeric(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "deck.key")
	if err := keys.Identity().Save(keyPath, false); err != nil {
		t.Fatalf("save key: %v", err)
	}

	output := executeCommand(t, nil, "key", "show", "--numeric", keyPath)
	if !strings.Contains(output, "1 2 3 4 5") {
		t.Errorf("key show --numeric output unexpected: %q", output)
	}
}

func TestKeyCheckValidFile(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "deck.key")
	if err := keys.Identity().Save(keyPath, true); err != nil {
		t.Fatalf("save key: %v", err)
	}

	output := executeCommand(t, nil, "key", "check", keyPath)
	if !strings.Contains(output, "valid") {
		t.Errorf("expected valid report, got: %q", output)
	}
}

func TestKeyCheckReportsDefect(t *testing.T) {
	setupTest(t)

	keyPath := filepath.Join(t.TempDir(), "short.key")
	if err := os.WriteFile(keyPath, []byte("1 2 3\n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	err := executeCommandErr(t, "key", "check", keyPath)
	if err == nil {
		t.Fatalf("expected check to fail")
	}
	if !strings.Contains(err.Error(), "54") {
		t.Errorf("defect report should name the expected count: %v", err)
	}
}

func TestKeyCheckWithoutFileOrConfig(t *testing.T) {
	setupTest(t)

	if err := executeCommandErr(t, "key", "check"); err == nil {
		t.Fatalf("expected an error without a key file")
	}
}

func TestKeyDeriveWithPassphraseFlag(t *testing.T) {
	setupTest(t)

	output := executeCommand(t, nil, "key", "derive", "-p", "foo", "--numeric")
	if !strings.Contains(output, "50 51 3 4 5 6 7 1 10") {
		t.Errorf("derived deck mismatch: %q", output)
	}
	if !strings.Contains(output, "characters") {
		t.Errorf("expected short passphrase warning, got: %q", output)
	}
}

func TestKeyDerivePassphraseFromStdin(t *testing.T) {
	setupTest(t)

	stdin := pipeWithContent(t, "foo\n")
	output := executeCommand(t, stdin, "key", "derive", "--numeric")
	if !strings.Contains(output, "50 51 3 4 5 6 7 1 10") {
		t.Errorf("derived deck mismatch: %q", output)
	}
}

func TestKeyDeriveMatchesKeygenRoundtrip(t *testing.T) {
	setupTest(t)

	// A derived key written through keygen-style save must load back
	// identical through key show.
	k, _ := keys.FromPassphrase(nil)
	keyPath := filepath.Join(t.TempDir(), "identity.key")
	if err := k.Save(keyPath, false); err != nil {
		t.Fatalf("save key: %v", err)
	}
	output := executeCommand(t, nil, "key", "show", "--numeric", keyPath)
	if !strings.Contains(output, "1 2 3 4 5") {
		t.Errorf("expected identity deck, got: %q", output)
	}
}
