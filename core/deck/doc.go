// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package deck models the 54-card deck the cipher operates on: card values,
// their bridge-style display codes, and the three deck manipulations
// (joker moves, triple cut, count cut) every keystream step is built from.
// The package provides primitives only; key validation and ownership live
// in core/keys.
package deck
