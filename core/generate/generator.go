// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"errors"
	"fmt"
	"unicode/utf8"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/passforge/core/charset"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
	"github.com/toeirei/passforge/core/strength"
	"github.com/toeirei/passforge/internal/logging"
)

// Defaults for the bounded loops and the batch pool.
const (
	DefaultMaxFilterAttempts  = 100
	DefaultMaxEntropyAttempts = 16
	DefaultBatchWorkers       = 4

	entropyLengthStep = 2
)

// Generator runs the generation pipeline. The zero value is not usable;
// construct one with New.
type Generator struct {
	rand               security.Rand
	maxFilterAttempts  int
	maxEntropyAttempts int
	batchWorkers       int
	log                *clog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the crypto/rand source. Intended for tests.
func WithRand(r security.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithMaxFilterAttempts bounds how many candidates the security filter may
// reject per length.
func WithMaxFilterAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxFilterAttempts = n
		}
	}
}

// WithMaxEntropyAttempts bounds how many times the pipeline re-enters with a
// larger password to reach the minimum entropy.
func WithMaxEntropyAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxEntropyAttempts = n
		}
	}
}

// WithBatchWorkers sets the parallelism of GenerateBatch.
func WithBatchWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.batchWorkers = n
		}
	}
}

// WithLogger sets the debug logger. Passwords are never logged.
func WithLogger(l *clog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New returns a Generator backed by crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{
		rand:               security.NewCryptoRand(),
		maxFilterAttempts:  DefaultMaxFilterAttempts,
		maxEntropyAttempts: DefaultMaxEntropyAttempts,
		batchWorkers:       DefaultBatchWorkers,
		log:                logging.L,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

var defaultGenerator = New()

// Generate runs the pipeline with a crypto/rand backed default generator.
func Generate(s model.GenerationSettings) (model.GenerationResult, error) {
	return defaultGenerator.Generate(s)
}

// Generate produces one password and its report.
func (g *Generator) Generate(s model.GenerationSettings) (model.GenerationResult, error) {
	s = s.Normalized()
	if err := Validate(s); err != nil {
		return model.GenerationResult{}, err
	}

	attempts := 0
	for round := 1; ; round++ {
		res, n, err := g.generateOnce(s)
		attempts += n
		if err != nil {
			return model.GenerationResult{}, err
		}
		res.Attempts = attempts
		if s.MinimumEntropyBits <= 0 || res.Report.EntropyBits >= s.MinimumEntropyBits {
			return res, nil
		}

		reason := fmt.Sprintf("%.1f bits below the %.1f bit minimum", res.Report.EntropyBits, s.MinimumEntropyBits)
		if round >= g.maxEntropyAttempts {
			return model.GenerationResult{}, &RetryExhaustedError{Stage: StageEntropy, Attempts: round, Reason: reason}
		}
		grown, ok := escalate(s)
		if !ok {
			return model.GenerationResult{}, &RetryExhaustedError{
				Stage:    StageEntropy,
				Attempts: round,
				Reason:   reason + "; settings cannot grow further",
			}
		}
		g.log.Debug("entropy below minimum, growing", "mode", s.Mode, "round", round, "bits", res.Report.EntropyBits)
		s = grown
	}
}

// generateOnce runs BuildCharset through Analyze for fixed settings. It
// returns the number of raw candidates drawn.
func (g *Generator) generateOnce(s model.GenerationSettings) (model.GenerationResult, int, error) {
	pools := charset.NewPools(s)
	var cs charset.Charset
	if s.Mode == model.ModeStandard || s.Mode == model.ModePronounceable {
		var err error
		if cs, err = charset.Build(s); err != nil {
			return model.GenerationResult{}, 0, configErr("categories", ErrEmptyCharset, "enable at least one of upper, lower, numbers, symbols")
		}
	}

	var last string
	for attempt := 1; attempt <= g.maxFilterAttempts; attempt++ {
		pw, err := g.draw(s, cs, pools)
		if err != nil {
			return model.GenerationResult{}, attempt, err
		}
		if s.Mode == model.ModeStandard && s.RequireEvery {
			if pw, err = enforce(g.rand, pw, s, pools); err != nil {
				return model.GenerationResult{}, attempt, err
			}
		}
		if last = rejection(pw, s); last != "" {
			g.log.Debug("candidate rejected", "reason", last, "attempt", attempt, "candidate", security.Redact(pw))
			continue
		}

		report := strength.Analyze(pw)
		if s.Mode == model.ModeStandard {
			report = strength.AnalyzeWith(pw, cs)
		}
		return model.GenerationResult{
			Password:        pw,
			Report:          report,
			Mode:            s.Mode,
			EffectiveLength: effectiveLength(s),
		}, attempt, nil
	}
	return model.GenerationResult{}, g.maxFilterAttempts, &RetryExhaustedError{
		Stage:    StageFilter,
		Attempts: g.maxFilterAttempts,
		Reason:   last,
	}
}

func (g *Generator) draw(s model.GenerationSettings, cs charset.Charset, pools charset.Pools) (string, error) {
	var (
		pw  string
		err error
	)
	switch s.Mode {
	case model.ModePassphrase:
		pw, err = passphrase(g.rand, s)
	case model.ModePattern:
		pw, err = pattern(g.rand, s.Pattern, pools)
	case model.ModePronounceable:
		pw, err = pronounceable(g.rand, s, pools)
	default:
		pw, err = standard(g.rand, cs, s.Length)
	}
	if err != nil {
		return "", fmt.Errorf("draw %s password: %w", s.Mode, err)
	}
	return pw, nil
}

// escalate grows the settings by one step. Patterns have a fixed shape and
// cannot grow.
func escalate(s model.GenerationSettings) (model.GenerationSettings, bool) {
	switch s.Mode {
	case model.ModePattern:
		return s, false
	case model.ModePassphrase:
		if s.PassphraseWords >= model.MaxPassphraseWords {
			return s, false
		}
		s.PassphraseWords++
		return s, true
	default:
		if s.Length >= model.MaxLength {
			return s, false
		}
		s.Length = min(s.Length+entropyLengthStep, model.MaxLength)
		return s, true
	}
}

func effectiveLength(s model.GenerationSettings) int {
	switch s.Mode {
	case model.ModePassphrase:
		return s.PassphraseWords
	case model.ModePattern:
		return utf8.RuneCountInString(s.Pattern)
	}
	return s.Length
}

// Validate checks settings that can be rejected without drawing randomness.
// Settings are expected to be Normalized.
func Validate(s model.GenerationSettings) error {
	if !s.Mode.Valid() {
		return configErr("mode", ErrInvalidMode, "%q", s.Mode)
	}
	for _, c := range s.CustomSymbols {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return configErr("custom_symbols", ErrInvalidSymbols, "%q", c)
		}
	}
	switch s.Mode {
	case model.ModePassphrase:
		if s.PassphraseWords < model.MinPassphraseWords || s.PassphraseWords > model.MaxPassphraseWords {
			return configErr("passphrase_words", ErrInvalidLength, "%d not in [%d,%d]",
				s.PassphraseWords, model.MinPassphraseWords, model.MaxPassphraseWords)
		}
	case model.ModePattern:
		n := utf8.RuneCountInString(s.Pattern)
		if n == 0 || n > model.MaxLength {
			return configErr("pattern", ErrInvalidPattern, "pattern must have 1 to %d characters", model.MaxLength)
		}
		if err := patternPoolsAvailable(s); err != nil {
			return err
		}
	default:
		if s.Length < model.MinLength || s.Length > model.MaxLength {
			return configErr("length", ErrInvalidLength, "%d not in [%d,%d]", s.Length, model.MinLength, model.MaxLength)
		}
		if _, err := charset.Build(s); errors.Is(err, charset.ErrEmpty) {
			return configErr("categories", ErrEmptyCharset, "enable at least one of upper, lower, numbers, symbols")
		}
	}
	return nil
}

func patternPoolsAvailable(s model.GenerationSettings) error {
	p := charset.NewPools(s)
	for _, c := range s.Pattern {
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
			continue
		}
		if pool.Len() == 0 {
			return configErr("pattern", ErrEmptyCharset, "no characters left for placeholder %q", c)
		}
	}
	return nil
}
