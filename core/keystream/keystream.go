// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keystream turns a deck into a stream of cipher values. Each
// draw plays one round of Solitaire: move the jokers, triple cut, count
// cut, then read the output card. Joker outputs are skipped by replaying
// the round, so consecutive draws can advance the deck more than once.
package keystream

import (
	"errors"

	"github.com/pontifex-team/pontifex/core/deck"
)

// ErrDeckStalled is returned when every retry of a draw lands on a
// joker. A well-formed 54-card deck cannot do this; seeing it means the
// deck handed to the generator was corrupt.
var ErrDeckStalled = errors.New("keystream: deck yielded a joker on every retry")

// maxRetries bounds the joker-retry loop. The original hand procedure
// just retries forever; one retry per card is far beyond anything a real
// deck produces.
const maxRetries = deck.Size

// Generator draws keystream values by mutating the deck it was given.
// It is not safe for concurrent use.
type Generator struct {
	deck deck.Deck
}

// New returns a generator that owns the given deck. Pass a clone if the
// caller needs to keep the original ordering.
func New(d deck.Deck) *Generator {
	return &Generator{deck: d}
}

// Next plays rounds until a non-joker output appears and returns its
// value in [1,52].
func (g *Generator) Next() (int, error) {
	for i := 0; i < maxRetries; i++ {
		g.deck.MoveCard(deck.JokerA, 1)
		g.deck.MoveCard(deck.JokerB, 2)
		g.deck.TripleCut()
		g.deck.CountCut()

		// Both jokers count as 53 when used as an offset.
		top := int(g.deck[0])
		if top > deck.Size-1 {
			top = deck.Size - 1
		}
		candidate := g.deck[top]
		if candidate.IsJoker() {
			continue
		}
		return int(candidate), nil
	}
	return 0, ErrDeckStalled
}

// Deck returns a snapshot of the generator's current deck state.
func (g *Generator) Deck() deck.Deck {
	return g.deck.Clone()
}
