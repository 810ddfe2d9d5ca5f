// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package codec converts between free text and the letter-code sequences
// the cipher actually operates on. Only the 26 letters carry information;
// everything else is dropped on the way in and output comes back as
// uppercase five-letter groups, the traditional hand-cipher format.
package codec
