// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the user interfaces for Pontifex.
//
// The cli subpackage implements the cobra command tree and the tui
// subpackage implements the interactive Bubble Tea workbench. Both are
// thin layers over the core packages.
package ui
