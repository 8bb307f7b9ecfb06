// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"

	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/strength"
)

func TestT_KnownAndUnknownIDs(t *testing.T) {
	Init("en")
	if got := T("level.excellent"); got != "Excellent" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := T("no.such.id"); got != "no.such.id" {
		t.Fatalf("unknown IDs must be returned unchanged, got %q", got)
	}
}

func TestTf_FillsTemplate(t *testing.T) {
	Init("en")
	got := Tf("cli.history.deleted", map[string]any{"ID": "abc"})
	if got != "Entry abc deleted." {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	SetLang("xx")
	defer Init("en")
	if got := T("level.weak"); got != "Weak" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

// Every identifier the analyzer can emit must have catalog text.
func TestCatalogCoversEngineIdentifiers(t *testing.T) {
	Init("en")
	ids := []string{
		strength.MsgLengthTooShort, strength.MsgLengthConsider12, strength.MsgMoreTypes,
		strength.MsgAddUppercase, strength.MsgAddLowercase, strength.MsgAddNumbers,
		strength.MsgAddSymbols, strength.MsgAvoidSequences, strength.MsgAvoidRepeats,
		strength.MsgAvoidCommonWords, strength.MsgAvoidKeyboard, strength.MsgAvoidDates,
		strength.MsgIncreaseVariety, strength.MsgExcellent, strength.MsgGood,
	}
	for _, l := range []model.Level{model.LevelVeryWeak, model.LevelWeak, model.LevelMedium, model.LevelStrong, model.LevelVeryStrong, model.LevelExcellent} {
		ids = append(ids, l.MessageID())
	}
	for _, c := range []model.CrackTime{model.CrackInstant, model.CrackSeconds, model.CrackMinutes, model.CrackHours, model.CrackDays, model.CrackYears, model.CrackCenturies} {
		ids = append(ids, c.MessageID())
	}
	for _, id := range ids {
		if T(id) == id {
			t.Errorf("missing catalog entry for %s", id)
		}
	}
}
