// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package codec

import (
	"strings"

	"github.com/pontifex-team/pontifex/util/slicest"
)

// Letter codes run 1..26 (A=1). PadCode is the sentinel appended to fill
// the last output group, 24 = 'X'.
const (
	MinCode = 1
	MaxCode = 26
	PadCode = 24
)

// GroupSize is the output block width of the hand-cipher format.
const GroupSize = 5

// Enumerate converts text into letter codes. Case folds, anything that is
// not a letter is silently dropped. When the retained count does not fill
// the last group, PadCode is appended 5-n times where n is the length of
// the raw input modulo 5. Counting raw characters instead of retained
// letters is a compatibility quirk: inputs with non-letter characters can
// end up one short of, or spilling past, a full group ("AB CD" yields 9
// codes). Callers relying on group alignment must feed clean text.
func Enumerate(text string) []int {
	codes := make([]int, 0, len(text))
	raw := 0
	for _, r := range text {
		raw++
		switch {
		case r >= 'A' && r <= 'Z':
			codes = append(codes, int(r-'A')+1)
		case r >= 'a' && r <= 'z':
			codes = append(codes, int(r-'a')+1)
		}
	}
	if len(codes)%GroupSize != 0 {
		pad := GroupSize - raw%GroupSize
		for i := 0; i < pad; i++ {
			codes = append(codes, PadCode)
		}
	}
	return codes
}

// Characterize maps letter codes back to uppercase text in space-separated
// groups of five. A trailing short group is emitted as-is.
func Characterize(codes []int) string {
	letters := slicest.Map(codes, func(c int) byte {
		return byte('A' + c - 1)
	})
	groups := slicest.Map(slicest.Chunk(letters, GroupSize), func(g []byte) string {
		return string(g)
	})
	return strings.Join(groups, " ")
}
