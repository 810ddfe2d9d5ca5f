// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"unicode/utf8"

	"github.com/pontifex-team/pontifex/core/codec"
	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/core/security"
)

// MinPassphraseChars is the passphrase length below which derivation
// attaches a WarnShortPassphrase diagnostic.
const MinPassphraseChars = 64

// FromPassphrase keys a deck from a passphrase. Starting from the
// identity ordering, every letter code runs one cipher round (joker
// moves, triple cut, count cut) followed by a second count cut at the
// code's value. The passphrase goes through the same enumeration as
// message text, so its pad codes take part in the keying and two
// phrases differing only in dropped characters can still key alike.
//
// Derivation itself never fails; an empty or short passphrase is legal
// and merely weak, reported through the returned warnings.
func FromPassphrase(pass security.Secret) (Key, []Warning) {
	var warnings []Warning
	if n := utf8.RuneCount(pass); n < MinPassphraseChars {
		warnings = append(warnings, Warning{Code: WarnShortPassphrase, Length: n})
	}

	var codes []int
	_ = pass.Use(func(b []byte) error {
		codes = codec.Enumerate(string(b))
		return nil
	})

	d := deck.New()
	for _, c := range codes {
		d.MoveCard(deck.JokerA, 1)
		d.MoveCard(deck.JokerB, 2)
		d.TripleCut()
		d.CountCut()
		d.CountCutAt(c)
	}
	return Key{cards: d}, warnings
}
