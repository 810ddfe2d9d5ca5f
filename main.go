// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Pontifex.
//
// Usage:
//
//	go run . [flags]
//	./pontifex [flags]
//
// This launches the Pontifex CLI; running it without a subcommand opens
// the interactive TUI. See --help for options.
package main

import (
	"os"

	"github.com/pontifex-team/pontifex/ui/cli"
)

// main is the entrypoint for the Pontifex CLI.
func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
