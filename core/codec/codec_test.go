// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package codec

import (
	"reflect"
	"testing"
)

func TestEnumerate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{}},
		{"no letters", "123 !!!", []int{}},
		{"single letter pads", "a", []int{1, 24, 24, 24, 24}},
		{"full group unpadded", "abcde", []int{1, 2, 3, 4, 5}},
		{"case folds", "AbCdE", []int{1, 2, 3, 4, 5}},
		{"spaces dropped", "AAAAA AAAAA", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{"punctuation dropped no pad", "Hello, World!", []int{8, 5, 12, 12, 15, 23, 15, 18, 12, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Enumerate(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Enumerate(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

// Padding counts raw characters, not retained letters. These inputs pin
// that behavior so nobody "fixes" it and breaks message compatibility.
func TestEnumerateRawLengthPadding(t *testing.T) {
	got := Enumerate("AB CD")
	want := []int{1, 2, 3, 4, 24, 24, 24, 24, 24}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Enumerate(\"AB CD\") = %v, want %v", got, want)
	}

	got = Enumerate("Mary had a little lamb")
	want = []int{13, 1, 18, 25, 8, 1, 4, 1, 12, 9, 20, 20, 12, 5, 12, 1, 13, 2, 24, 24, 24}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Enumerate lamb = %v, want %v", got, want)
	}
}

func TestCharacterize(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want string
	}{
		{"empty", nil, ""},
		{"known ciphertext", []int{5, 24, 11, 25, 9, 26, 19, 7, 5, 8}, "EXKYI ZSGEH"},
		{"short trailing group", []int{1, 2, 3, 4, 5, 6, 7}, "ABCDE FG"},
		{"single group", []int{26, 26, 26, 26, 26}, "ZZZZZ"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Characterize(c.in); got != c.want {
				t.Errorf("Characterize(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEnumerateCharacterizeRoundTrip(t *testing.T) {
	in := "Attack at dawn"
	out := Characterize(Enumerate(in))
	if out != "ATTAC KATDA WNX" {
		t.Errorf("round trip gave %q", out)
	}
}
