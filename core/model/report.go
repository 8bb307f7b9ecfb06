// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// Level is the ordered strength bucket derived from a score.
type Level string

const (
	LevelVeryWeak   Level = "very_weak"
	LevelWeak       Level = "weak"
	LevelMedium     Level = "medium"
	LevelStrong     Level = "strong"
	LevelVeryStrong Level = "very_strong"
	LevelExcellent  Level = "excellent"
)

// Rank returns the position of the level in ascending order (0 = very weak).
func (l Level) Rank() int {
	switch l {
	case LevelWeak:
		return 1
	case LevelMedium:
		return 2
	case LevelStrong:
		return 3
	case LevelVeryStrong:
		return 4
	case LevelExcellent:
		return 5
	}
	return 0
}

// MessageID is the catalog identifier used to render the level.
func (l Level) MessageID() string { return "level." + string(l) }

// CrackTime is a coarse, human scale brute-force duration bucket.
type CrackTime string

const (
	CrackInstant   CrackTime = "instant"
	CrackSeconds   CrackTime = "seconds"
	CrackMinutes   CrackTime = "minutes"
	CrackHours     CrackTime = "hours"
	CrackDays      CrackTime = "days"
	CrackYears     CrackTime = "years"
	CrackCenturies CrackTime = "centuries"
)

// MessageID is the catalog identifier used to render the bucket.
func (c CrackTime) MessageID() string { return "crack_time." + string(c) }

// StrengthReport is derived entirely from the analysed string.
type StrengthReport struct {
	Score       int       `json:"score"`
	Level       Level     `json:"level"`
	EntropyBits float64   `json:"entropy_bits"`
	CrackTime   CrackTime `json:"crack_time"`

	Length           int `json:"length"`
	UniqueChars      int `json:"unique_chars"`
	CharacterVariety int `json:"character_variety"`
	CharsetSize      int `json:"charset_size"`

	HasUpper   bool `json:"has_upper"`
	HasLower   bool `json:"has_lower"`
	HasNumbers bool `json:"has_numbers"`
	HasSymbols bool `json:"has_symbols"`

	HasSequence    bool `json:"has_sequence"`
	HasRepeatedRun bool `json:"has_repeated_run"`

	CommonWords      []string `json:"common_words"`
	KeyboardPatterns []string `json:"keyboard_patterns"`
	DatePatterns     []string `json:"date_patterns"`

	// Feedback holds message identifiers, most important first.
	Feedback []string `json:"feedback"`
}

// GenerationResult is returned by a single generation call.
type GenerationResult struct {
	Password string         `json:"password"`
	Report   StrengthReport `json:"report"`

	// Mode is the grammar that produced Password.
	Mode Mode `json:"mode"`
	// Attempts counts every raw generation, including filtered rejects.
	Attempts int `json:"attempts"`
	// EffectiveLength differs from the requested length when entropy
	// escalation grew the password (or the word count for passphrases).
	EffectiveLength int `json:"effective_length"`
	// HistoryID is set when the result was recorded in history.
	HistoryID string `json:"history_id,omitempty"`
}
