// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package keystream

import (
	"reflect"
	"testing"

	"github.com/pontifex-team/pontifex/core/deck"
)

// The classical reference run from an unkeyed deck. The fourth round
// outputs a joker, so the retry path is exercised between 10 and 24.
func TestNextIdentitySequence(t *testing.T) {
	g := New(deck.New())
	want := []int{4, 49, 10, 24, 8, 51, 44, 6, 4, 33}
	for i, w := range want {
		got, err := g.Next()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}

func TestNextAdvancesDeck(t *testing.T) {
	g := New(deck.New())
	if _, err := g.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	want := make(deck.Deck, deck.Size)
	for i := 0; i < deck.Size-1; i++ {
		want[i] = deck.Card(i + 2)
	}
	want[deck.Size-1] = deck.Card(1)
	if !reflect.DeepEqual(g.Deck(), want) {
		t.Errorf("deck after one draw = %v", g.Deck())
	}
}

func TestNextNeverEmitsJokers(t *testing.T) {
	g := New(deck.New())
	for i := 0; i < 1000; i++ {
		v, err := g.Next()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if v < 1 || v > 52 {
			t.Fatalf("draw %d = %d, outside [1,52]", i, v)
		}
	}
}

func TestDeckReturnsSnapshot(t *testing.T) {
	g := New(deck.New())
	snap := g.Deck()
	if _, err := g.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if snap[0] != 1 {
		t.Error("snapshot changed after the generator advanced")
	}
}
