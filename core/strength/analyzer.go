// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"math"
	"unicode/utf8"

	"github.com/toeirei/passforge/core/model"
)

// Default per-category pool sizes. The symbol size is an assumption about a
// typical symbol alphabet, not a property of the analysed string.
const (
	LowerPool  = 26
	UpperPool  = 26
	NumberPool = 10
	SymbolPool = 32
)

// Penalties subtracted from the score for each detected weakness.
const (
	sequencePenalty    = 15
	repeatPenalty      = 10
	commonWordPenalty  = 5
	keyboardPenalty    = 10
	datePenalty        = 8
	maxLengthPoints    = 40
	maxVarietyPoints   = 20
	maxUniquePoints    = 15
	maxEntropyPoints   = 25
	lengthPointsFactor = 3
	varietyPoints      = 5
)

type pools struct {
	lower, upper, numbers, symbols int
}

var defaultPools = pools{lower: LowerPool, upper: UpperPool, numbers: NumberPool, symbols: SymbolPool}

// Analyze scores pw using the default pool sizes.
func Analyze(pw string) model.StrengthReport {
	return analyze(pw, defaultPools)
}

// AnalyzeWith scores pw assuming it was drawn from alphabet: each category
// present in pw contributes the number of alphabet characters in that
// category instead of the default pool size. Categories absent from the
// alphabet keep their default size.
func AnalyzeWith(pw string, alphabet []rune) model.StrengthReport {
	if len(alphabet) == 0 {
		return analyze(pw, defaultPools)
	}
	var p pools
	for _, r := range alphabet {
		switch classify(r) {
		case classLower:
			p.lower++
		case classUpper:
			p.upper++
		case classNumber:
			p.numbers++
		default:
			p.symbols++
		}
	}
	if p.lower == 0 {
		p.lower = LowerPool
	}
	if p.upper == 0 {
		p.upper = UpperPool
	}
	if p.numbers == 0 {
		p.numbers = NumberPool
	}
	if p.symbols == 0 {
		p.symbols = SymbolPool
	}
	return analyze(pw, p)
}

type class int

const (
	classLower class = iota
	classUpper
	classNumber
	classSymbol
)

func classify(r rune) class {
	switch {
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classNumber
	}
	return classSymbol
}

func analyze(pw string, p pools) model.StrengthReport {
	r := model.StrengthReport{
		Length:           utf8.RuneCountInString(pw),
		CommonWords:      []string{},
		KeyboardPatterns: []string{},
		DatePatterns:     []string{},
	}

	unique := make(map[rune]bool)
	for _, c := range pw {
		unique[c] = true
		switch classify(c) {
		case classLower:
			r.HasLower = true
		case classUpper:
			r.HasUpper = true
		case classNumber:
			r.HasNumbers = true
		default:
			r.HasSymbols = true
		}
	}
	r.UniqueChars = len(unique)
	for _, on := range []bool{r.HasUpper, r.HasLower, r.HasNumbers, r.HasSymbols} {
		if on {
			r.CharacterVariety++
		}
	}

	r.HasSequence = HasTripleRun(pw) || ContainsSequence(pw)
	r.HasRepeatedRun = HasRepeatedRun(pw)
	f := detect(pw)
	if f.words != nil {
		r.CommonWords = f.words
	}
	if f.keyboard != nil {
		r.KeyboardPatterns = f.keyboard
	}
	if f.dates != nil {
		r.DatePatterns = f.dates
	}

	if r.HasLower {
		r.CharsetSize += p.lower
	}
	if r.HasUpper {
		r.CharsetSize += p.upper
	}
	if r.HasNumbers {
		r.CharsetSize += p.numbers
	}
	if r.HasSymbols {
		r.CharsetSize += p.symbols
	}

	r.EntropyBits = Entropy(r.Length, r.CharsetSize)
	r.Score = score(r)
	r.Level = LevelFor(r.Score)
	r.CrackTime = EstimateCrackTime(r.Length, r.CharsetSize)
	r.Feedback = Feedback(r)
	return r
}

// Entropy returns length * log2(charsetSize), or 0 for an empty space.
func Entropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}

func score(r model.StrengthReport) int {
	if r.Length == 0 {
		return 0
	}
	s := math.Min(float64(r.Length*lengthPointsFactor), maxLengthPoints)
	s += math.Min(float64(r.CharacterVariety*varietyPoints), maxVarietyPoints)
	s += math.Min(float64(r.UniqueChars)/float64(r.Length)*maxUniquePoints, maxUniquePoints)
	s += math.Min(r.EntropyBits/4, maxEntropyPoints)

	if r.HasSequence {
		s -= sequencePenalty
	}
	if r.HasRepeatedRun {
		s -= repeatPenalty
	}
	s -= float64(commonWordPenalty * len(r.CommonWords))
	s -= float64(keyboardPenalty * len(r.KeyboardPatterns))
	s -= float64(datePenalty * len(r.DatePatterns))

	return int(math.Round(math.Max(0, math.Min(100, s))))
}

// LevelFor maps a score to its bucket; lower bounds are inclusive.
func LevelFor(score int) model.Level {
	switch {
	case score >= 90:
		return model.LevelExcellent
	case score >= 75:
		return model.LevelVeryStrong
	case score >= 60:
		return model.LevelStrong
	case score >= 40:
		return model.LevelMedium
	case score >= 20:
		return model.LevelWeak
	}
	return model.LevelVeryWeak
}
