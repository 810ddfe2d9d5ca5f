// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/util/slicest"
)

// cardsPerLine keeps saved key files readable: six rows of nine cards.
const cardsPerLine = 9

// Format renders the key as card codes, nine per line. This is the
// canonical key file format; it reads back with ParseText and doubles as
// instructions for arranging a physical deck.
func (k Key) Format() string {
	lines := slicest.Map(slicest.Chunk(k.Codes(), cardsPerLine), func(row []string) string {
		return strings.Join(row, " ")
	})
	return strings.Join(lines, "\n")
}

// FormatNumeric renders the key as 54 space-separated numbers on one
// line, the interchange form used in test vectors.
func (k Key) FormatNumeric() string {
	return strings.Join(slicest.Map(k.Ints(), strconv.Itoa), " ")
}

// ParseText reads a key from whitespace-separated tokens. Each token may
// be a card code ("3D", "J0") or a plain number; the two forms can be
// mixed. The assembled sequence must be a full permutation.
func ParseText(s string) (Key, error) {
	tokens := strings.Fields(s)
	cards, err := slicest.MapXI(tokens, func(i int, tok string) (deck.Card, error) {
		if n, convErr := strconv.Atoi(tok); convErr == nil {
			return deck.Card(n), nil
		}
		c, parseErr := deck.Parse(tok)
		if parseErr != nil {
			return 0, fmt.Errorf("token %d: %w", i+1, parseErr)
		}
		return c, nil
	})
	if err != nil {
		return Key{}, err
	}
	return New(cards)
}

// Load reads and parses a key file.
func Load(path string) (Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Key{}, fmt.Errorf("read key file: %w", err)
	}
	k, err := ParseText(string(data))
	if err != nil {
		return Key{}, fmt.Errorf("key file %s: %w", path, err)
	}
	return k, nil
}

// Save writes the key to a file, card codes by default or the one-line
// numeric form. Key files are created user-readable only.
func (k Key) Save(path string, numeric bool) error {
	content := k.Format()
	if numeric {
		content = k.FormatNumeric()
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}
