// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"strings"
	"unicode"

	"github.com/toeirei/passforge/core/charset"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
)

// Pattern placeholders. Every other rune is copied literally; there is no
// escape, so a literal L, l, 9 or S cannot appear in the output.
const (
	PatternUpper  = 'L'
	PatternLower  = 'l'
	PatternDigit  = '9'
	PatternSymbol = 'S'
)

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"

	upperConsonantChance = 30
	digitChance          = 15
	symbolChance         = 10
)

// standard samples length characters uniformly from cs.
func standard(r security.Rand, cs charset.Charset, length int) (string, error) {
	out := make([]rune, length)
	for i := range out {
		c, err := security.Pick(r, cs)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// passphrase joins independently drawn words. Its length depends only on
// the words drawn and the separator.
func passphrase(r security.Rand, s model.GenerationSettings) (string, error) {
	words := make([]string, s.PassphraseWords)
	for i := range words {
		idx, err := r.Intn(len(Words))
		if err != nil {
			return "", err
		}
		w := Words[idx]
		if s.PassphraseCapitalize {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		words[i] = w
	}
	if s.PassphraseNumber {
		pos, err := r.Intn(len(words))
		if err != nil {
			return "", err
		}
		d, err := r.Intn(10)
		if err != nil {
			return "", err
		}
		words[pos] += string(rune('0' + d))
	}
	return strings.Join(words, s.Separator()), nil
}

// pattern expands placeholders from the per-category pools.
func pattern(r security.Rand, tmpl string, p charset.Pools) (string, error) {
	var b strings.Builder
	for _, c := range tmpl {
		var pool charset.Charset
		switch c {
		case PatternUpper:
			pool = p.Upper
		case PatternLower:
			pool = p.Lower
		case PatternDigit:
			pool = p.Numbers
		case PatternSymbol:
			pool = p.Symbols
		default:
			b.WriteRune(c)
			continue
		}
		x, err := security.Pick(r, pool)
		if err != nil {
			return "", err
		}
		b.WriteRune(x)
	}
	return b.String(), nil
}

// pronounceable alternates consonants and vowels, then sprinkles in
// upper case consonants, digits and symbols for the enabled categories.
func pronounceable(r security.Rand, s model.GenerationSettings, p charset.Pools) (string, error) {
	cons := keep(consonants, p.Lower)
	vows := keep(vowels, p.Lower)
	out := make([]rune, s.Length)
	for i := range out {
		set := cons
		if i%2 == 1 {
			set = vows
		}
		c, err := security.Pick(r, set)
		if err != nil {
			return "", err
		}
		if i%2 == 0 && s.Upper {
			up := unicode.ToUpper(c)
			if ok, err := security.Chance(r, upperConsonantChance); err != nil {
				return "", err
			} else if ok && p.Upper.Contains(up) {
				c = up
			}
		}
		if s.Numbers && p.Numbers.Len() > 0 {
			ok, err := security.Chance(r, digitChance)
			if err != nil {
				return "", err
			}
			if ok {
				if c, err = security.Pick(r, p.Numbers); err != nil {
					return "", err
				}
				out[i] = c
				continue
			}
		}
		if s.Symbols && p.Symbols.Len() > 0 {
			ok, err := security.Chance(r, symbolChance)
			if err != nil {
				return "", err
			}
			if ok {
				if c, err = security.Pick(r, p.Symbols); err != nil {
					return "", err
				}
			}
		}
		out[i] = c
	}
	return string(out), nil
}

// keep returns the runes of base that survive in pool.
func keep(base string, pool charset.Charset) []rune {
	out := make([]rune, 0, len(base))
	for _, c := range base {
		if pool.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
