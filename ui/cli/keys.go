// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/core/security"
	"github.com/pontifex-team/pontifex/i18n"
)

// keyCmd is the root command for key handling operations.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Work with deck keys (show, check, derive)",
	Long: `The 'key' command group works with Solitaire keys:
  - Show a stored key as card codes or numbers
  - Check that a key file holds a full 54-card permutation
  - Derive a key from a passphrase`,
}

// keyShowCmd renders a stored key.
var keyShowCmd = &cobra.Command{
	Use:   "show [key-file]",
	Short: "Show a stored key as card codes",
	Long: `Prints the key from the given file, or from the configured default key
file. The card-code form doubles as sorting instructions for a physical
deck; --numeric prints the 54-number interchange form instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := keyFilePath(args)
		if err != nil {
			return err
		}
		k, err := keys.Load(path)
		if err != nil {
			return err
		}
		numeric, _ := cmd.Flags().GetBool("numeric")
		fmt.Println(formatKey(k, numeric))
		if !numeric {
			printJokerPositions(k)
		}
		return nil
	},
}

// keyCheckCmd validates a key file.
var keyCheckCmd = &cobra.Command{
	Use:   "check [key-file]",
	Short: "Check that a key file holds a valid deck",
	Long: `Parses the key file and validates the permutation property: all 54
cards present, each exactly once. The first defect found is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := keyFilePath(args)
		if err != nil {
			return err
		}
		k, err := keys.Load(path)
		if err != nil {
			return errors.New(i18n.T("key.check_failed", err))
		}
		fmt.Println(i18n.T("key.check_ok", path))
		printJokerPositions(k)
		return nil
	},
}

// keyDeriveCmd derives and prints a key from a passphrase.
var keyDeriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a key from a passphrase",
	Long: `Runs the Solitaire keying schedule over the identity deck with the
passphrase and prints the resulting key. The passphrase comes from
--passphrase, from the first line of piped stdin, or from an interactive
no-echo prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pass, err := passphraseForDerive(cmd)
		if err != nil {
			return err
		}

		k, warnings := keys.FromPassphrase(pass)
		logWarnings(warnings)

		numeric, _ := cmd.Flags().GetBool("numeric")
		fmt.Println(formatKey(k, numeric))
		return nil
	},
}

// registerKeyCommands registers all key-related subcommands.
func registerKeyCommands() {
	// Register subcommands with the main key command
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyCheckCmd)
	keyCmd.AddCommand(keyDeriveCmd)

	// Setup flags (only if not already defined)
	if keyShowCmd.Flags().Lookup("numeric") == nil {
		keyShowCmd.Flags().BoolP("numeric", "n", false, "Print the key as 54 numbers")
	}
	if keyDeriveCmd.Flags().Lookup("numeric") == nil {
		keyDeriveCmd.Flags().BoolP("numeric", "n", false, "Print the key as 54 numbers")
		keyDeriveCmd.Flags().StringP("passphrase", "p", "", "Passphrase to derive the key from")
		keyDeriveCmd.Flags().Bool("passphrase-stdin", false, "Read the passphrase from the first line of stdin")
	}
}

// keyFilePath picks the key file from the argument or the configured
// default.
func keyFilePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if appConfig.Keys.File != "" {
		return appConfig.Keys.File, nil
	}
	return "", errors.New(i18n.T("key.error_no_file"))
}

func formatKey(k keys.Key, numeric bool) string {
	if numeric {
		return k.FormatNumeric()
	}
	return k.Format()
}

func printJokerPositions(k keys.Key) {
	d := k.Deck()
	fmt.Println(i18n.T("key.jokers_at", d.Index(deck.JokerA)+1, d.Index(deck.JokerB)+1))
}

// passphraseForDerive reads the passphrase for `key derive`: flag first,
// then piped stdin, then an interactive prompt.
func passphraseForDerive(cmd *cobra.Command) (security.Secret, error) {
	if passphrase, _ := cmd.Flags().GetString("passphrase"); passphrase != "" {
		return security.FromString(passphrase), nil
	}

	passphraseStdin, _ := cmd.Flags().GetBool("passphrase-stdin")
	if passphraseStdin || !term.IsTerminal(int(os.Stdin.Fd())) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return nil, errors.New(i18n.T("crypt.error_read_passphrase", err))
		}
		return security.FromString(strings.TrimRight(line, "\r\n")), nil
	}

	return promptForPassphrase(i18n.T("crypt.enter_passphrase"))
}
