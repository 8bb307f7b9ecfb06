// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package charset

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/passforge/core/model"
)

func TestBuild_OrderIsLowerUpperNumbersSymbols(t *testing.T) {
	cs, err := Build(model.GenerationSettings{Upper: true, Lower: true, Numbers: true, Symbols: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := Lowercase + Uppercase + Digits + DefaultSymbols
	if cs.String() != want {
		t.Fatalf("unexpected order:\n got %q\nwant %q", cs.String(), want)
	}
	if cs.Len() != 26+26+10+len(DefaultSymbols) {
		t.Fatalf("unexpected size %d", cs.Len())
	}
}

func TestBuild_EmptyWhenNothingEnabled(t *testing.T) {
	_, err := Build(model.GenerationSettings{Length: 4})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestBuild_Exclusions(t *testing.T) {
	tests := []struct {
		name     string
		settings model.GenerationSettings
		absent   string
	}{
		{
			name:     "similar",
			settings: model.GenerationSettings{Upper: true, Lower: true, Numbers: true, ExcludeSimilar: true},
			absent:   Similar,
		},
		{
			name:     "ambiguous",
			settings: model.GenerationSettings{Symbols: true, ExcludeAmbiguous: true},
			absent:   Ambiguous,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := Build(tc.settings)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if cs.ContainsAny(tc.absent) {
				t.Fatalf("charset %q still contains one of %q", cs.String(), tc.absent)
			}
		})
	}
}

func TestBuild_CustomSymbolsOverrideAndDedupe(t *testing.T) {
	cs, err := Build(model.GenerationSettings{Lower: true, Symbols: true, CustomSymbols: "!!a#"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cs.String() != Lowercase+"!#" {
		t.Fatalf("unexpected charset %q", cs.String())
	}
	if cs.Contains('@') {
		t.Fatalf("default symbol leaked into custom set")
	}
}

func TestBuild_AllExcludedIsEmpty(t *testing.T) {
	_, err := Build(model.GenerationSettings{Symbols: true, CustomSymbols: "()[]", ExcludeAmbiguous: true})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestNewPools_IgnoresEnabledFlags(t *testing.T) {
	p := NewPools(model.GenerationSettings{ExcludeSimilar: true})
	if strings.ContainsAny(p.Upper.String(), "OI") || strings.ContainsAny(p.Numbers.String(), "01") {
		t.Fatalf("pools not filtered: %+v", p)
	}
	if p.Lower.Len() != 25 || p.Symbols.String() != DefaultSymbols {
		t.Fatalf("unexpected pools: lower=%q symbols=%q", p.Lower, p.Symbols)
	}
}
