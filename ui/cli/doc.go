// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Pontifex using Cobra.
// It wires configuration, default services, and provides commands that
// delegate to the deterministic `core` cipher packages. CLI code should
// remain thin and keep cipher logic in `core`.
package cli
