// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"math/rand"

	"github.com/pontifex-team/pontifex/core/deck"
)

// Generate shuffles a full deck in software and returns it as a key,
// together with the WarnWeakGenerator diagnostic that always accompanies
// it: math/rand is fine for the lazy but it is not a shuffled deck of
// cards. Pass a seeded rng for reproducible output, or nil to use the
// global source.
func Generate(rng *rand.Rand) (Key, Warning) {
	d := deck.New()
	swap := func(i, j int) { d[i], d[j] = d[j], d[i] }
	if rng != nil {
		rng.Shuffle(len(d), swap)
	} else {
		rand.Shuffle(len(d), swap)
	}
	return Key{cards: d}, Warning{Code: WarnWeakGenerator}
}
