// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"fmt"

	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/util/slicest"
)

// Defect classifies why a card sequence is not a usable key.
type Defect int

const (
	// DefectLength means the sequence does not hold exactly 54 cards.
	DefectLength Defect = iota + 1
	// DefectRange means a value falls outside [1,54].
	DefectRange
	// DefectDuplicate means a card appears more than once (which also
	// implies another is missing).
	DefectDuplicate
)

// InvalidKeyError describes the first defect found while validating an
// explicit key. No partial key is ever produced alongside it.
type InvalidKeyError struct {
	Defect Defect
	Length int       // observed card count, set for DefectLength
	Card   deck.Card // offending card, set for DefectRange and DefectDuplicate
}

func (e *InvalidKeyError) Error() string {
	switch e.Defect {
	case DefectLength:
		return fmt.Sprintf("invalid key: %d cards, want %d", e.Length, deck.Size)
	case DefectRange:
		return fmt.Sprintf("invalid key: card value %d outside [1,%d]", int(e.Card), deck.Size)
	case DefectDuplicate:
		return fmt.Sprintf("invalid key: duplicate card %s", e.Card)
	}
	return "invalid key"
}

// A Key is an immutable, validated deck ordering. The zero Key is empty
// and unusable; obtain one through New, FromPassphrase, Generate or
// Identity.
type Key struct {
	cards deck.Deck
}

// New validates a card sequence and wraps it as a Key. The sequence must
// contain every value 1..54 exactly once.
func New(cards []deck.Card) (Key, error) {
	if len(cards) != deck.Size {
		return Key{}, &InvalidKeyError{Defect: DefectLength, Length: len(cards)}
	}
	var seen [deck.Size + 1]bool
	for _, c := range cards {
		if !c.InRange() {
			return Key{}, &InvalidKeyError{Defect: DefectRange, Card: c}
		}
		if seen[c] {
			return Key{}, &InvalidKeyError{Defect: DefectDuplicate, Card: c}
		}
		seen[c] = true
	}
	d := make(deck.Deck, deck.Size)
	copy(d, cards)
	return Key{cards: d}, nil
}

// NewFromInts is New for plain integer sequences, the interchange form.
func NewFromInts(values []int) (Key, error) {
	return New(slicest.Map(values, func(v int) deck.Card {
		return deck.Card(v)
	}))
}

// Identity returns the unkeyed deck ordering 1..54.
func Identity() Key {
	return Key{cards: deck.New()}
}

// IsZero reports whether the key is the unusable zero value.
func (k Key) IsZero() bool { return len(k.cards) == 0 }

// Deck returns a fresh working copy of the key's ordering. Mutating the
// copy never touches the key.
func (k Key) Deck() deck.Deck {
	return k.cards.Clone()
}

// Ints returns the ordering as plain integers.
func (k Key) Ints() []int {
	return slicest.Map(k.cards, func(c deck.Card) int {
		return int(c)
	})
}

// Codes returns the ordering as display card codes ("3D", "J0", ...).
func (k Key) Codes() []string {
	return slicest.Map(k.cards, func(c deck.Card) string {
		return c.String()
	})
}

// Equal reports whether two keys hold the same ordering.
func (k Key) Equal(other Key) bool {
	if len(k.cards) != len(other.cards) {
		return false
	}
	for i, c := range k.cards {
		if other.cards[i] != c {
			return false
		}
	}
	return true
}
