// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import "github.com/toeirei/passforge/core/model"

// Feedback message identifiers.
const (
	MsgLengthTooShort   = "feedback.length_too_short"
	MsgLengthConsider12 = "feedback.length_consider_12"
	MsgMoreTypes        = "feedback.more_character_types"
	MsgAddUppercase     = "feedback.add_uppercase"
	MsgAddLowercase     = "feedback.add_lowercase"
	MsgAddNumbers       = "feedback.add_numbers"
	MsgAddSymbols       = "feedback.add_symbols"
	MsgAvoidSequences   = "feedback.avoid_sequences"
	MsgAvoidRepeats     = "feedback.avoid_repeats"
	MsgAvoidCommonWords = "feedback.avoid_common_words"
	MsgAvoidKeyboard    = "feedback.avoid_keyboard_patterns"
	MsgAvoidDates       = "feedback.avoid_dates"
	MsgIncreaseVariety  = "feedback.increase_variety"
	MsgExcellent        = "feedback.excellent"
	MsgGood             = "feedback.good"
)

const (
	uniqueRatioFloor       = 0.7
	shortLengthThreshold   = 8
	advisedLengthThreshold = 12
)

// Feedback derives the ordered advice list from report fields only, so it
// can be recomputed from a stored report.
func Feedback(r model.StrengthReport) []string {
	out := []string{}
	switch {
	case r.Length < shortLengthThreshold:
		out = append(out, MsgLengthTooShort)
	case r.Length < advisedLengthThreshold:
		out = append(out, MsgLengthConsider12)
	}
	if r.CharacterVariety < 3 {
		out = append(out, MsgMoreTypes)
	}
	if !r.HasUpper {
		out = append(out, MsgAddUppercase)
	}
	if !r.HasLower {
		out = append(out, MsgAddLowercase)
	}
	if !r.HasNumbers {
		out = append(out, MsgAddNumbers)
	}
	if !r.HasSymbols {
		out = append(out, MsgAddSymbols)
	}
	if r.HasSequence {
		out = append(out, MsgAvoidSequences)
	}
	if r.HasRepeatedRun {
		out = append(out, MsgAvoidRepeats)
	}
	if len(r.CommonWords) > 0 {
		out = append(out, MsgAvoidCommonWords)
	}
	if len(r.KeyboardPatterns) > 0 {
		out = append(out, MsgAvoidKeyboard)
	}
	if len(r.DatePatterns) > 0 {
		out = append(out, MsgAvoidDates)
	}
	if r.Length > 0 && float64(r.UniqueChars)/float64(r.Length) < uniqueRatioFloor {
		out = append(out, MsgIncreaseVariety)
	}
	switch {
	case r.Score >= 75:
		out = append(out, MsgExcellent)
	case r.Score >= 60:
		out = append(out, MsgGood)
	}
	return out
}
