// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import "github.com/pontifex-team/pontifex/core/codec"

const alphabet = codec.MaxCode

// foldKey maps a raw keystream value from [1,52] into letter space.
func foldKey(k int) int {
	if k > alphabet {
		k -= alphabet
	}
	return k
}

// Scramble combines a letter code with a keystream value by addition
// over {1..26}. 26 acts as the modular zero, so Scramble(i, 26) == i.
func Scramble(i, k int) int {
	v := i + foldKey(k)
	if v > alphabet {
		v -= alphabet
	}
	return v
}

// Clarify is the inverse of Scramble: subtraction over {1..26}.
func Clarify(i, k int) int {
	v := i - foldKey(k)
	if v < 1 {
		v += alphabet
	}
	return v
}
