// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// Length bounds accepted by the character based modes.
const (
	MinLength = 4
	MaxLength = 128
)

// Passphrase bounds and defaults.
const (
	MinPassphraseWords         = 2
	MaxPassphraseWords         = 20
	DefaultPassphraseWords     = 4
	DefaultPassphraseSeparator = "-"
)

// Mode selects the generation grammar. Modes are mutually exclusive.
type Mode string

const (
	// ModeStandard samples every position from the configured charset.
	ModeStandard Mode = "standard"
	// ModePassphrase joins words drawn from the embedded word list.
	ModePassphrase Mode = "passphrase"
	// ModePattern expands a template such as "Llll-9999".
	ModePattern Mode = "pattern"
	// ModePronounceable alternates consonants and vowels.
	ModePronounceable Mode = "pronounceable"
)

// Valid reports whether m is one of the known modes. The empty mode is
// treated as ModeStandard by Normalized.
func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModePassphrase, ModePattern, ModePronounceable, "":
		return true
	}
	return false
}

// GenerationSettings is the declarative rule set consumed by the generator.
// It is owned by the caller and never retained by the engine.
type GenerationSettings struct {
	Length  int  `json:"length" yaml:"length"`
	Upper   bool `json:"upper" yaml:"upper"`
	Lower   bool `json:"lower" yaml:"lower"`
	Numbers bool `json:"numbers" yaml:"numbers"`
	Symbols bool `json:"symbols" yaml:"symbols"`

	ExcludeSimilar   bool `json:"exclude_similar" yaml:"exclude_similar"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	RequireEvery     bool `json:"require_every" yaml:"require_every"`

	// CustomSymbols replaces the default symbol set when non-empty.
	CustomSymbols string `json:"custom_symbols,omitempty" yaml:"custom_symbols,omitempty"`

	// MinimumEntropyBits triggers length escalation when > 0.
	MinimumEntropyBits float64 `json:"minimum_entropy_bits,omitempty" yaml:"minimum_entropy_bits,omitempty"`

	// ExcludedWords are rejected case-insensitively anywhere in the output.
	ExcludedWords  []string `json:"excluded_words,omitempty" yaml:"excluded_words,omitempty"`
	AvoidSequences bool     `json:"avoid_sequences" yaml:"avoid_sequences"`

	Mode    Mode   `json:"mode" yaml:"mode"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	PassphraseWords int `json:"passphrase_words,omitempty" yaml:"passphrase_words,omitempty"`
	// PassphraseSeparator is nil for the default; a pointer to "" joins the
	// words directly.
	PassphraseSeparator  *string `json:"passphrase_separator,omitempty" yaml:"passphrase_separator,omitempty"`
	PassphraseCapitalize bool    `json:"passphrase_capitalize,omitempty" yaml:"passphrase_capitalize,omitempty"`
	PassphraseNumber     bool    `json:"passphrase_number,omitempty" yaml:"passphrase_number,omitempty"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Length:              16,
		Upper:               true,
		Lower:               true,
		Numbers:             true,
		Symbols:             true,
		RequireEvery:        true,
		Mode:                ModeStandard,
		PassphraseWords:     DefaultPassphraseWords,
		PassphraseSeparator: NewSeparator(DefaultPassphraseSeparator),
	}
}

// Normalized fills zero-valued mode and passphrase fields with defaults.
// The receiver is not modified.
func (s GenerationSettings) Normalized() GenerationSettings {
	if s.Mode == "" {
		s.Mode = ModeStandard
	}
	if s.PassphraseWords == 0 {
		s.PassphraseWords = DefaultPassphraseWords
	}
	if s.PassphraseSeparator == nil {
		s.PassphraseSeparator = NewSeparator(DefaultPassphraseSeparator)
	}
	if len(s.ExcludedWords) > 0 {
		words := make([]string, 0, len(s.ExcludedWords))
		for _, w := range s.ExcludedWords {
			if w != "" {
				words = append(words, w)
			}
		}
		s.ExcludedWords = words
	}
	return s
}

// NewSeparator returns a PassphraseSeparator value for sep.
func NewSeparator(sep string) *string { return &sep }

// Separator returns the effective passphrase separator.
func (s GenerationSettings) Separator() string {
	if s.PassphraseSeparator == nil {
		return DefaultPassphraseSeparator
	}
	return *s.PassphraseSeparator
}

// EnabledCategories returns how many of the four character categories are on.
func (s GenerationSettings) EnabledCategories() int {
	n := 0
	for _, on := range []bool{s.Upper, s.Lower, s.Numbers, s.Symbols} {
		if on {
			n++
		}
	}
	return n
}
