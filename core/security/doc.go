// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security provides lightweight secret handling helpers so
// passphrases stay in redaction-aware wrappers on their way from prompt
// to key derivation, without pulling heavy crypto dependencies into
// every package.
package security
