// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import "fmt"

// WarningCode identifies a class of non-fatal key diagnostic.
type WarningCode int

const (
	// WarnShortPassphrase flags passphrases under MinPassphraseChars.
	// Letters carry roughly 1.4 bits of entropy each, so short phrases
	// key the deck far below its theoretical strength.
	WarnShortPassphrase WarningCode = iota + 1
	// WarnWeakGenerator flags keys from the software shuffle, which uses
	// a non-cryptographic PRNG. A physically shuffled deck is the real
	// key source this cipher was designed for.
	WarnWeakGenerator
)

// Warning is a non-fatal diagnostic produced while obtaining a key.
// Operations that return warnings still succeed; callers decide whether
// and how to surface them.
type Warning struct {
	Code   WarningCode
	Length int // passphrase character count, set for WarnShortPassphrase
}

func (w Warning) String() string {
	switch w.Code {
	case WarnShortPassphrase:
		return fmt.Sprintf("passphrase is only %d characters; %d or more recommended", w.Length, MinPassphraseChars)
	case WarnWeakGenerator:
		return "key came from a pseudo random shuffle; shuffle a real deck for serious use"
	}
	return "unknown key warning"
}
