// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"github.com/toeirei/passforge/core/charset"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
)

type requirement struct {
	enabled bool
	pool    charset.Charset
}

// requirements lists the categories in enforcement order: upper, lower,
// numbers, symbols.
func requirements(s model.GenerationSettings, p charset.Pools) []requirement {
	return []requirement{
		{enabled: s.Upper, pool: p.Upper},
		{enabled: s.Lower, pool: p.Lower},
		{enabled: s.Numbers, pool: p.Numbers},
		{enabled: s.Symbols, pool: p.Symbols},
	}
}

// enforce overwrites one random position per missing category with a random
// character of that category. Positions holding the only representative of
// another enabled category are skipped, so as long as the password is at
// least as long as the number of categories every category ends up present.
// Shorter passwords fall back to any position and may lose a guarantee.
func enforce(r security.Rand, pw string, s model.GenerationSettings, p charset.Pools) (string, error) {
	out := []rune(pw)
	if len(out) == 0 {
		return pw, nil
	}
	reqs := requirements(s, p)
	for i, req := range reqs {
		if !req.enabled || req.pool.Len() == 0 || count(out, req.pool) > 0 {
			continue
		}
		candidates := make([]int, 0, len(out))
		for pos, c := range out {
			if !soleRepresentative(out, c, reqs, i) {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) == 0 {
			for pos := range out {
				candidates = append(candidates, pos)
			}
		}
		idx, err := r.Intn(len(candidates))
		if err != nil {
			return "", err
		}
		c, err := security.Pick(r, req.pool)
		if err != nil {
			return "", err
		}
		out[candidates[idx]] = c
	}
	return string(out), nil
}

// soleRepresentative reports whether c is the only character of some other
// enabled category in pw.
func soleRepresentative(pw []rune, c rune, reqs []requirement, skip int) bool {
	for j, req := range reqs {
		if j == skip || !req.enabled || !req.pool.Contains(c) {
			continue
		}
		if count(pw, req.pool) == 1 {
			return true
		}
	}
	return false
}

func count(pw []rune, pool charset.Charset) int {
	n := 0
	for _, c := range pw {
		if pool.Contains(c) {
			n++
		}
	}
	return n
}
