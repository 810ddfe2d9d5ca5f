// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package keys owns the cipher key: a validated 54-card permutation. It
// covers construction from explicit card sequences, derivation from a
// passphrase, software-shuffle generation, and the textual key formats
// (card codes and plain numbers) used for key files. Everything here is
// UI-agnostic; diagnostics come back as values, never as prints.
package keys
