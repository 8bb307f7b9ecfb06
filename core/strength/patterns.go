// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Sequences are short literal runs treated as predictable anywhere in a
// password. Matching is case-insensitive.
var Sequences = []string{"123", "abc", "qwe", "asd", "zxc"}

// CommonWords is the embedded dictionary of over-used password words. It is
// kept small on purpose; "password" itself is left to the length and variety
// rules.
var CommonWords = []string{
	"admin", "welcome", "letmein", "monkey", "dragon",
	"master", "sunshine", "princess", "football", "baseball", "iloveyou",
	"shadow", "superman", "trustno1", "login", "secret",
}

// KeyboardPatterns are adjacent-key walks on common layouts.
var KeyboardPatterns = []string{
	"qwerty", "qwertz", "azerty", "asdfgh", "zxcvbn", "qazwsx",
	"1qaz2wsx", "poiuyt", "mnbvcx",
}

const matchTimeout = 250 * time.Millisecond

// Backreferences are outside RE2, hence regexp2 for the run matchers.
var (
	tripleRun = mustBackref(`(.)\1{2,}`)
	quadRun   = mustBackref(`(.)\1{3,}`)

	yearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)
	dayPattern  = regexp.MustCompile(`\d{2}[-/.]\d{2}[-/.](?:\d{4}|\d{2})`)
)

func mustBackref(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.Singleline)
	re.MatchTimeout = matchTimeout
	return re
}

// HasTripleRun reports whether s contains the same character three or more
// times in a row.
func HasTripleRun(s string) bool { return matchBackref(tripleRun, s, 3) }

// HasRepeatedRun reports whether s contains the same character four or more
// times in a row.
func HasRepeatedRun(s string) bool { return matchBackref(quadRun, s, 4) }

func matchBackref(re *regexp2.Regexp, s string, run int) bool {
	ok, err := re.MatchString(s)
	if err != nil {
		// Only a timeout can fail here; fall back to a linear scan.
		return longestRun(s) >= run
	}
	return ok
}

func longestRun(s string) int {
	best, cur := 0, 0
	var prev rune
	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			cur++
		} else {
			cur = 1
		}
		prev = r
		if cur > best {
			best = cur
		}
	}
	return best
}

// ContainsSequence reports whether s contains any of Sequences.
func ContainsSequence(s string) bool {
	lower := strings.ToLower(s)
	for _, seq := range Sequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

// detector finds one family of weaknesses in the lower-cased password.
type detector struct {
	find func(lower string) []string
	dst  func(f *findings) *[]string
}

type findings struct {
	words    []string
	keyboard []string
	dates    []string
}

var detectors = []detector{
	{find: substrings(CommonWords), dst: func(f *findings) *[]string { return &f.words }},
	{find: substrings(KeyboardPatterns), dst: func(f *findings) *[]string { return &f.keyboard }},
	{find: dates, dst: func(f *findings) *[]string { return &f.dates }},
}

func detect(pw string) findings {
	lower := strings.ToLower(pw)
	var f findings
	for _, d := range detectors {
		*d.dst(&f) = d.find(lower)
	}
	return f
}

func substrings(list []string) func(string) []string {
	return func(lower string) []string {
		var out []string
		for _, w := range list {
			if strings.Contains(lower, w) {
				out = append(out, w)
			}
		}
		return out
	}
}

// dates reports full dates first, then years not already part of one.
func dates(lower string) []string {
	var out []string
	var spans [][]int
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{dayPattern, yearPattern} {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			if covered(spans, loc) {
				continue
			}
			spans = append(spans, loc)
			m := lower[loc[0]:loc[1]]
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func covered(spans [][]int, loc []int) bool {
	for _, sp := range spans {
		if loc[0] >= sp[0] && loc[1] <= sp[1] {
			return true
		}
	}
	return false
}
