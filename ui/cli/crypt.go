// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pontifex-team/pontifex/core/cipher"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/core/security"
	"github.com/pontifex-team/pontifex/i18n"
	"github.com/pontifex-team/pontifex/internal/logging"
)

// encryptCmd enciphers a message into 5-letter ciphertext groups.
var encryptCmd = &cobra.Command{
	Use:     "encrypt [message]",
	Aliases: []string{"enc"},
	Short:   "Encrypt a message with the Solitaire cipher",
	Long: `Encrypts a message. The message comes from the argument, from --file,
or from stdin ("-" as argument or file also selects stdin). The key comes
from --key-file, --passphrase, the configured default key file, or an
interactive prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCrypt(cmd, args, false)
	},
}

// decryptCmd is the Clarify direction of encryptCmd.
var decryptCmd = &cobra.Command{
	Use:     "decrypt [message]",
	Aliases: []string{"dec"},
	Short:   "Decrypt a Solitaire ciphertext",
	Long: `Decrypts a message enciphered with the same key. Message and key
sources work exactly like for encrypt. Note that ciphertext padding
decrypts to trailing X (or pad noise) characters; the cipher cannot tell
padding apart from message text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCrypt(cmd, args, true)
	},
}

// applyCryptFlags defines the shared encrypt/decrypt flags. NewRootCmd may
// run more than once in tests and pflag panics on duplicate definitions,
// so every set is guarded.
func applyCryptFlags(cmd *cobra.Command) {
	if cmd.Flags().Lookup("key-file") == nil {
		cmd.Flags().StringP("key-file", "k", "", "Key file with 54 card codes or numbers")
		cmd.Flags().StringP("passphrase", "p", "", "Derive the key from this passphrase")
		cmd.Flags().Bool("passphrase-stdin", false, "Read the passphrase from the first line of stdin")
		cmd.Flags().StringP("file", "f", "", `Read the message from this file ("-" for stdin)`)
		cmd.Flags().BoolP("copy", "c", false, "Copy the result to the clipboard")
	}
}

func runCrypt(cmd *cobra.Command, args []string, decrypt bool) error {
	// One buffered reader for the whole run so --passphrase-stdin can take
	// the first line and leave the rest of the pipe for the message.
	stdin := bufio.NewReader(os.Stdin)

	engine, err := resolveEngine(cmd, stdin)
	if err != nil {
		return err
	}
	logWarnings(engine.Warnings())

	message, err := resolveMessage(cmd, args, stdin)
	if err != nil {
		return err
	}

	var result string
	if decrypt {
		result, err = engine.Decode(message)
	} else {
		result, err = engine.Encode(message)
	}
	if err != nil {
		return err
	}

	fmt.Println(result)

	if shouldCopy(cmd) {
		if copyErr := clipboard.WriteAll(result); copyErr != nil {
			logging.Warnf("%s", i18n.T("crypt.error_clipboard", copyErr))
		} else {
			logging.Infof("%s", i18n.T("crypt.copied"))
		}
	}
	return nil
}

// resolveMessage finds the message text: argument first, then --file, then
// stdin. An interactive terminal with nothing piped is treated as "no
// message" instead of blocking on a read.
func resolveMessage(cmd *cobra.Command, args []string, stdin *bufio.Reader) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}

	fromFile, _ := cmd.Flags().GetString("file")
	if fromFile != "" && fromFile != "-" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", errors.New(i18n.T("crypt.error_read_file", fromFile, err))
		}
		return string(data), nil
	}

	wantStdin := (len(args) > 0 && args[0] == "-") || fromFile == "-"
	if !wantStdin && term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New(i18n.T("crypt.error_no_message"))
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.New(i18n.T("crypt.error_read_stdin", err))
	}
	return string(data), nil
}

// resolveEngine builds the cipher engine from the first available key
// source: explicit flags, the configured key file, then an interactive
// passphrase prompt.
func resolveEngine(cmd *cobra.Command, stdin *bufio.Reader) (*cipher.Engine, error) {
	keyFile, _ := cmd.Flags().GetString("key-file")
	passphrase, _ := cmd.Flags().GetString("passphrase")
	passphraseStdin, _ := cmd.Flags().GetBool("passphrase-stdin")

	sources := 0
	for _, given := range []bool{keyFile != "", passphrase != "", passphraseStdin} {
		if given {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New(i18n.T("crypt.error_conflicting_sources"))
	}

	switch {
	case keyFile != "":
		k, err := keys.Load(keyFile)
		if err != nil {
			return nil, err
		}
		return cipher.New(cipher.WithKey(k))
	case passphrase != "":
		return cipher.New(cipher.WithPassphrase(security.FromString(passphrase)))
	case passphraseStdin:
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return nil, errors.New(i18n.T("crypt.error_read_passphrase", err))
		}
		return cipher.New(cipher.WithPassphrase(security.FromString(strings.TrimRight(line, "\r\n"))))
	}

	if appConfig.Keys.File != "" {
		k, err := keys.Load(appConfig.Keys.File)
		if err != nil {
			return nil, err
		}
		return cipher.New(cipher.WithKey(k))
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		pass, err := promptForPassphrase(i18n.T("crypt.enter_passphrase"))
		if err != nil {
			return nil, err
		}
		return cipher.New(cipher.WithPassphrase(pass))
	}

	return nil, errors.New(i18n.T("crypt.error_missing_key"))
}

// promptForPassphrase reads a passphrase from the terminal without echo.
// The prompt goes to stderr so piped stdout stays clean ciphertext.
func promptForPassphrase(prompt string) (security.Secret, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, errors.New(i18n.T("crypt.error_read_passphrase", err))
	}
	return security.FromBytes(raw), nil
}

// shouldCopy honors an explicit --copy over the configured default.
func shouldCopy(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("copy") {
		copyFlag, _ := cmd.Flags().GetBool("copy")
		return copyFlag
	}
	return appConfig.Clipboard
}
