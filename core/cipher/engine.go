// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"

	"github.com/pontifex-team/pontifex/core/codec"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/core/keystream"
	"github.com/pontifex-team/pontifex/core/security"
)

var (
	// ErrMissingKey means no usable key source was configured.
	ErrMissingKey = errors.New("no key configured")
	// ErrConflictingKeySources means both an explicit key and a
	// passphrase were given. The two are mutually exclusive; picking
	// one silently would hide a caller bug.
	ErrConflictingKeySources = errors.New("both key and passphrase configured")
)

// An Engine encrypts and decrypts messages with a fixed key. Every call
// rebuilds the working deck from the key, so an Engine never carries
// state between messages.
type Engine struct {
	key      keys.Key
	warnings []keys.Warning

	passphrase security.Secret
	hasPass    bool
	hasKey     bool
}

// A NewOpt configures the key source of an Engine under construction.
type NewOpt = func(e *Engine)

// WithKey keys the engine with an explicit, already validated key.
// A zero key counts as no key at all.
func WithKey(k keys.Key) NewOpt {
	return func(e *Engine) {
		e.key = k
		e.hasKey = true
	}
}

// WithPassphrase keys the engine by passphrase derivation. Derivation
// warnings are kept and available through Warnings.
func WithPassphrase(pass security.Secret) NewOpt {
	return func(e *Engine) {
		e.passphrase = pass
		e.hasPass = true
	}
}

// New builds an Engine from exactly one key source.
func New(opts ...NewOpt) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.hasKey && e.hasPass {
		return nil, ErrConflictingKeySources
	}
	if e.hasPass {
		e.key, e.warnings = keys.FromPassphrase(e.passphrase)
		e.passphrase = nil
	}
	if e.key.IsZero() {
		return nil, ErrMissingKey
	}
	return e, nil
}

// Key returns the engine's key.
func (e *Engine) Key() keys.Key {
	return e.key
}

// Warnings returns the diagnostics collected while keying the engine,
// such as a short passphrase. The engine works regardless.
func (e *Engine) Warnings() []keys.Warning {
	return append([]keys.Warning(nil), e.warnings...)
}

// Encode enciphers a message and returns the ciphertext in 5-letter
// groups. Characters outside A-Z are dropped and the message is padded
// before encryption, so the output length is fixed by the input.
func (e *Engine) Encode(text string) (string, error) {
	return e.transform(text, Scramble)
}

// Decode deciphers a message produced by Encode. Ciphertext that is not
// a whole number of groups gets padded like any other input; the tail
// of such a decode is pad noise, which the format cannot distinguish
// from message text.
func (e *Engine) Decode(text string) (string, error) {
	return e.transform(text, Clarify)
}

func (e *Engine) transform(text string, combine func(code, key int) int) (string, error) {
	codes := codec.Enumerate(text)
	gen := keystream.New(e.key.Deck())
	out := make([]int, len(codes))
	for i, c := range codes {
		k, err := gen.Next()
		if err != nil {
			return "", err
		}
		out[i] = combine(c, k)
	}
	return codec.Characterize(out), nil
}
