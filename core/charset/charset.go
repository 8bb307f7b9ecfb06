// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charset turns generation settings into the concrete, ordered
// alphabet the generators sample from.
package charset

import (
	"errors"
	"strings"

	"github.com/toeirei/passforge/core/model"
)

// Base alphabets, in the order they are concatenated.
const (
	Lowercase      = "abcdefghijklmnopqrstuvwxyz"
	Uppercase      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits         = "0123456789"
	DefaultSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Similar characters are easy to confuse when read back.
	Similar = "0O1lI"
	// Ambiguous characters are awkward in shells, URLs and config files.
	Ambiguous = "{}[]()/\\'\"~,;.<>"
)

// ErrEmpty is returned when no character survives the configured filters.
var ErrEmpty = errors.New("charset is empty")

// Charset is an ordered set of unique characters.
type Charset []rune

// Len returns the number of characters in the set.
func (c Charset) Len() int { return len(c) }

// String returns the characters in order.
func (c Charset) String() string { return string(c) }

// Contains reports whether r is part of the set.
func (c Charset) Contains(r rune) bool {
	for _, x := range c {
		if x == r {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every rune of s belongs to the set.
func (c Charset) ContainsAll(s string) bool {
	for _, r := range s {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether any rune of s belongs to the set.
func (c Charset) ContainsAny(s string) bool {
	for _, r := range s {
		if c.Contains(r) {
			return true
		}
	}
	return false
}

// Pools holds the per-category alphabets after exclusions were applied.
// Pools are populated regardless of which categories are enabled; pattern
// expansion and requirement enforcement pick from them directly.
type Pools struct {
	Lower   Charset
	Upper   Charset
	Numbers Charset
	Symbols Charset
}

// NewPools applies the exclusion rules of s to each category.
func NewPools(s model.GenerationSettings) Pools {
	symbols := DefaultSymbols
	if s.CustomSymbols != "" {
		symbols = s.CustomSymbols
	}
	var removed string
	if s.ExcludeSimilar {
		removed += Similar
	}
	if s.ExcludeAmbiguous {
		removed += Ambiguous
	}
	return Pools{
		Lower:   filter(Lowercase, removed),
		Upper:   filter(Uppercase, removed),
		Numbers: filter(Digits, removed),
		Symbols: filter(symbols, removed),
	}
}

// Build returns the union of the enabled categories in the fixed order
// lower, upper, numbers, symbols, deduplicated.
func Build(s model.GenerationSettings) (Charset, error) {
	p := NewPools(s)
	seen := make(map[rune]bool)
	var out Charset
	add := func(set Charset) {
		for _, r := range set {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	if s.Lower {
		add(p.Lower)
	}
	if s.Upper {
		add(p.Upper)
	}
	if s.Numbers {
		add(p.Numbers)
	}
	if s.Symbols {
		add(p.Symbols)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

func filter(base, removed string) Charset {
	seen := make(map[rune]bool)
	out := make(Charset, 0, len(base))
	for _, r := range base {
		if seen[r] || strings.ContainsRune(removed, r) {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
