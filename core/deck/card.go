// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package deck

import (
	"fmt"
	"strings"
)

// A Card is a single card value in [1,54]. Values 1..52 are the ranked
// cards in bridge suit order (clubs, diamonds, hearts, spades, ace low),
// so 1 is the ace of clubs and 52 the king of spades. The two jokers sit
// on top: 53 (J0) and 54 (J1). Jokers drive the cuts and are never
// emitted as keystream output.
type Card int

// Joker card values. JokerA moves one position per step, JokerB two.
const (
	JokerA Card = 53
	JokerB Card = 54
)

// Size is the number of cards in a full deck.
const Size = 54

var ranks = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var suits = [4]string{"C", "D", "H", "S"}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool { return c == JokerA || c == JokerB }

// InRange reports whether the value is a legal card at all.
func (c Card) InRange() bool { return c >= 1 && c <= Size }

// String renders the card as its display code: rank followed by suit
// letter ("AC", "10D", "KS"), or "J0"/"J1" for the jokers.
func (c Card) String() string {
	switch {
	case c == JokerA:
		return "J0"
	case c == JokerB:
		return "J1"
	case !c.InRange():
		return fmt.Sprintf("?%d", int(c))
	}
	return ranks[(c-1)%13] + suits[(c-1)/13]
}

// Parse converts a display code back into a Card. It tolerates case and
// surrounding whitespace ("10h" and " 10H " both parse), matching what a
// human types during interactive key entry.
func Parse(s string) (Card, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return 0, fmt.Errorf("empty card code")
	}
	switch code {
	case "J0":
		return JokerA, nil
	case "J1":
		return JokerB, nil
	}

	suit := code[len(code)-1:]
	rank := code[:len(code)-1]

	suitIdx := -1
	for i, s := range suits {
		if s == suit {
			suitIdx = i
			break
		}
	}
	if suitIdx == -1 {
		return 0, fmt.Errorf("unknown suit in card code %q", s)
	}

	rankIdx := -1
	for i, r := range ranks {
		if r == rank {
			rankIdx = i
			break
		}
	}
	if rankIdx == -1 {
		return 0, fmt.Errorf("unknown rank in card code %q", s)
	}

	return Card(suitIdx*13 + rankIdx + 1), nil
}
