// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"testing"

	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/core/security"
)

func passphraseEngine(t *testing.T, passphrase string) *Engine {
	t.Helper()
	e, err := New(WithPassphrase(security.FromString(passphrase)))
	if err != nil {
		t.Fatalf("New(WithPassphrase(%q)) error = %v", passphrase, err)
	}
	return e
}

func TestNewKeySources(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrMissingKey) {
		t.Errorf("New() error = %v, want ErrMissingKey", err)
	}
	if _, err := New(WithKey(keys.Key{})); !errors.Is(err, ErrMissingKey) {
		t.Errorf("New(WithKey(zero)) error = %v, want ErrMissingKey", err)
	}
	_, err := New(WithKey(keys.Identity()), WithPassphrase(security.FromString("x")))
	if !errors.Is(err, ErrConflictingKeySources) {
		t.Errorf("New(key+passphrase) error = %v, want ErrConflictingKeySources", err)
	}

	e, err := New(WithKey(keys.Identity()))
	if err != nil {
		t.Fatalf("New(WithKey) error = %v", err)
	}
	if !e.Key().Equal(keys.Identity()) {
		t.Errorf("Key() does not match the configured key")
	}
	if w := e.Warnings(); len(w) != 0 {
		t.Errorf("explicit key produced warnings %v", w)
	}
}

func TestEncodeIdentityKey(t *testing.T) {
	e, err := New(WithKey(keys.Identity()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got, err := e.Encode("AAAAA AAAAA")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "EXKYI ZSGEH"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	back, err := e.Decode(got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "AAAAA AAAAA"; back != want {
		t.Errorf("Decode() = %q, want %q", back, want)
	}
}

func TestEncodePassphraseVectors(t *testing.T) {
	tests := []struct {
		passphrase string
		message    string
		want       string
	}{
		{"foo", "AAAAA AAAAA AAAAA", "TIKJJ RQZRK BBZNA"},
		{"pontifex", "Mary had a little lamb", "NXTHU MHFDL GOHHU HMERR S"},
		{"cryptonomicon", "SOLITAIRE", "YGLHC CJVIX"},
	}

	for _, tt := range tests {
		t.Run(tt.passphrase, func(t *testing.T) {
			e := passphraseEngine(t, tt.passphrase)
			got, err := e.Encode(tt.message)
			if err != nil {
				t.Fatalf("Encode(%q) error = %v", tt.message, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestDecodeVectors(t *testing.T) {
	// The short-group ciphertext gets re-padded on decode, so the
	// plaintext grows pad noise past the original message.
	e := passphraseEngine(t, "pontifex")
	got, err := e.Decode("NXTHU MHFDL GOHHU HMERR S")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "MARYH ADALI TTLEL AMBXX XWVSK S"; got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}

	e = passphraseEngine(t, "cryptonomicon")
	got, err = e.Decode("YGLHC CJVIX")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "SOLIT AIREX"; got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestEncodeIsStateless(t *testing.T) {
	e := passphraseEngine(t, "foo")
	first, err := e.Encode("AAAAA AAAAA AAAAA")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := e.Encode("AAAAA AAAAA AAAAA")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if first != second {
		t.Errorf("second Encode() = %q, first = %q", second, first)
	}
}

func TestRoundTripWholeGroups(t *testing.T) {
	e := passphraseEngine(t, "cryptonomicon")
	ciphertext, err := e.Encode("HELLO WORLD")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	plaintext, err := e.Decode(ciphertext)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "HELLO WORLD"; plaintext != want {
		t.Errorf("round trip = %q, want %q", plaintext, want)
	}
}

func TestEncodeEmptyMessage(t *testing.T) {
	e := passphraseEngine(t, "foo")
	got, err := e.Encode("12345 !!")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got != "" {
		t.Errorf("Encode(no letters) = %q, want empty", got)
	}
}

func TestWarningsPassThrough(t *testing.T) {
	e := passphraseEngine(t, "foo")
	w := e.Warnings()
	if len(w) != 1 || w[0].Code != keys.WarnShortPassphrase {
		t.Fatalf("Warnings() = %v, want one short passphrase warning", w)
	}
	w[0].Code = keys.WarnWeakGenerator
	if again := e.Warnings(); again[0].Code != keys.WarnShortPassphrase {
		t.Errorf("Warnings() exposed internal state to mutation")
	}
}
