// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package deck

// A Deck is an ordered arrangement of cards, index 0 on top. The cipher
// operations mutate a Deck in place; callers that need to keep the
// original ordering must Clone first.
type Deck []Card

// New returns a deck in identity order: 1..52 followed by both jokers.
func New() Deck {
	d := make(Deck, Size)
	for i := range d {
		d[i] = Card(i + 1)
	}
	return d
}

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Index returns the 0-based position of a card, or -1 if it is absent.
func (d Deck) Index(c Card) int {
	for i, card := range d {
		if card == c {
			return i
		}
	}
	return -1
}

// MoveCard moves a card down the deck by the given number of places. A
// move past the bottom wraps around to just below the top card, never
// onto the very top: the deck is circular and the top slot belongs to
// whatever card follows the wrap.
func (d *Deck) MoveCard(c Card, places int) {
	s := *d
	idx := s.Index(c)
	if idx < 0 {
		return
	}
	ni := idx + places
	if ni > len(s)-1 {
		ni -= len(s) - 1
	}

	s = append(s[:idx], s[idx+1:]...)
	s = append(s, 0)
	copy(s[ni+1:], s[ni:])
	s[ni] = c
	*d = s
}

// TripleCut swaps the cards above the first joker with the cards below
// the second. The jokers and everything between them stay put.
func (d *Deck) TripleCut() {
	s := *d
	lo := s.Index(JokerA)
	hi := s.Index(JokerB)
	if lo < 0 || hi < 0 {
		return
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	out := make(Deck, 0, len(s))
	out = append(out, s[hi+1:]...)
	out = append(out, s[lo:hi+1]...)
	out = append(out, s[:lo]...)
	*d = out
}

// CountCut performs the count cut: take the bottom card's value, cut
// that many cards off the top and move them to just above the bottom
// card. When a joker is on the bottom the deck is left untouched.
func (d *Deck) CountCut() {
	s := *d
	if len(s) == 0 {
		return
	}
	bottom := s[len(s)-1]
	if bottom.IsJoker() {
		return
	}
	d.cutAt(int(bottom))
}

// CountCutAt performs a count cut at an explicit position instead of
// the bottom card's value. Passphrase keying uses this for its second,
// keyed cut. The bottom-joker rule applies here too.
func (d *Deck) CountCutAt(n int) {
	s := *d
	if len(s) == 0 || s[len(s)-1].IsJoker() {
		return
	}
	d.cutAt(n)
}

func (d *Deck) cutAt(n int) {
	s := *d
	// The joker short-circuit above keeps n below 54; the clamps stay as
	// a safety net so a malformed cut position cannot slice out of range.
	if n > len(s)-1 {
		n = len(s) - 1
	}
	if n < 0 {
		n = 0
	}
	bottom := s[len(s)-1]
	rest := s[:len(s)-1]

	out := make(Deck, 0, len(s))
	out = append(out, rest[n:]...)
	out = append(out, rest[:n]...)
	out = append(out, bottom)
	*d = out
}
