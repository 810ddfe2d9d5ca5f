// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher runs the Solitaire cipher end to end: it owns a key,
// spins up a fresh keystream for every call and combines message codes
// with keystream values modulo 26.
//
// An Engine is keyed once, at construction, from exactly one source:
// an explicit key or a passphrase. Encode and Decode always start from
// that key, so repeated calls are independent of each other. A single
// Engine is not safe for concurrent use.
package cipher
