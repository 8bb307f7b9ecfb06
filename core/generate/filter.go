// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"strings"

	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/strength"
)

// Rejection reasons reported by the security filter.
const (
	RejectExcludedWord = "excluded word"
	RejectSequence     = "predictable sequence"
)

// rejection returns why pw must be regenerated, or "" when it passes. The
// filter never repairs a candidate; the orchestrator draws a fresh one.
func rejection(pw string, s model.GenerationSettings) string {
	if len(s.ExcludedWords) > 0 {
		lower := strings.ToLower(pw)
		for _, w := range s.ExcludedWords {
			if strings.Contains(lower, strings.ToLower(w)) {
				return RejectExcludedWord
			}
		}
	}
	if s.AvoidSequences && (strength.HasTripleRun(pw) || strength.ContainsSequence(pw)) {
		return RejectSequence
	}
	return ""
}
