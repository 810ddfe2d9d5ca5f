// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/i18n"
)

// keygenCmd shuffles a fresh key in software. The weak-generator warning
// is the point of the command: it always reminds the user that a real,
// physically shuffled deck is the stronger key source.
var keygenCmd = &cobra.Command{
	Use:   "keygen [output-file]",
	Short: "Generate a random key (a real shuffled deck is stronger)",
	Long: `Generates a key by shuffling a full 54-card deck with a pseudo random
generator and prints it, or writes it to the given file. The software
shuffle is convenient but not cryptographically strong; for anything
serious, shuffle a physical deck and enter it instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, warning := keys.Generate(nil)
		logWarnings([]keys.Warning{warning})

		numeric, _ := cmd.Flags().GetBool("numeric")
		if len(args) == 0 {
			fmt.Println(formatKey(k, numeric))
			return nil
		}

		path := args[0]
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			if _, err := os.Stat(path); err == nil {
				answer := promptForConfirmation(i18n.T("keygen.confirm_overwrite", path))
				if answer != "y" && answer != "yes" {
					fmt.Println(i18n.T("keygen.aborted"))
					return nil
				}
			}
		}

		if err := k.Save(path, numeric); err != nil {
			return err
		}
		fmt.Println(i18n.T("keygen.saved", path))
		return nil
	},
}
