// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
// Package core groups the deterministic cipher packages of Pontifex. The
// subpackages are free of UI and configuration concerns: deck and codec hold
// the data model, keystream and cipher the algorithm, keys and security the
// key material handling. Everything here is pure logic that the CLI and TUI
// layers build on.
package core
