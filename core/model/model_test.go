// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"reflect"
	"testing"
)

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeStandard, ModePassphrase, ModePattern, ModePronounceable, ""} {
		if !m.Valid() {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	if Mode("diceware").Valid() {
		t.Fatalf("unknown mode must be invalid")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Length != 16 || s.Mode != ModeStandard || s.EnabledCategories() != 4 || !s.RequireEvery {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if !reflect.DeepEqual(s, s.Normalized()) {
		t.Fatalf("defaults must already be normalized")
	}
}

func TestNormalizedFillsZeroValues(t *testing.T) {
	in := GenerationSettings{Length: 10, ExcludedWords: []string{"", "acme", ""}}
	out := in.Normalized()
	if out.Mode != ModeStandard {
		t.Fatalf("mode = %q", out.Mode)
	}
	if out.PassphraseWords != DefaultPassphraseWords || out.Separator() != DefaultPassphraseSeparator {
		t.Fatalf("passphrase defaults not applied: %+v", out)
	}
	if !reflect.DeepEqual(out.ExcludedWords, []string{"acme"}) {
		t.Fatalf("excluded words = %q", out.ExcludedWords)
	}
	if in.Mode != "" || len(in.ExcludedWords) != 3 {
		t.Fatalf("receiver was modified: %+v", in)
	}
}

func TestNormalizedKeepsExplicitEmptySeparator(t *testing.T) {
	s := GenerationSettings{Mode: ModePassphrase, PassphraseSeparator: NewSeparator("")}.Normalized()
	if s.PassphraseSeparator == nil || s.Separator() != "" {
		t.Fatalf("explicit empty separator was replaced: %v", s.PassphraseSeparator)
	}
	if got := (GenerationSettings{}).Separator(); got != DefaultPassphraseSeparator {
		t.Fatalf("unset separator = %q, want default", got)
	}
}

func TestEnabledCategories(t *testing.T) {
	if n := (GenerationSettings{}).EnabledCategories(); n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
	if n := (GenerationSettings{Upper: true, Symbols: true}).EnabledCategories(); n != 2 {
		t.Fatalf("got %d, want 2", n)
	}
}

func TestLevelRankIsOrdered(t *testing.T) {
	levels := []Level{LevelVeryWeak, LevelWeak, LevelMedium, LevelStrong, LevelVeryStrong, LevelExcellent}
	for i, l := range levels {
		if l.Rank() != i {
			t.Fatalf("%s rank = %d, want %d", l, l.Rank(), i)
		}
	}
}

func TestMessageIDs(t *testing.T) {
	if got := LevelVeryStrong.MessageID(); got != "level.very_strong" {
		t.Fatalf("got %q", got)
	}
	if got := CrackCenturies.MessageID(); got != "crack_time.centuries" {
		t.Fatalf("got %q", got)
	}
}
