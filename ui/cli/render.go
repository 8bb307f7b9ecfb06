// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
	"github.com/toeirei/passforge/internal/i18n"
)

var (
	passwordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headingStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)

	levelColors = map[model.Level]lipgloss.Color{
		model.LevelVeryWeak:   lipgloss.Color("9"),
		model.LevelWeak:       lipgloss.Color("208"),
		model.LevelMedium:     lipgloss.Color("11"),
		model.LevelStrong:     lipgloss.Color("10"),
		model.LevelVeryStrong: lipgloss.Color("10"),
		model.LevelExcellent:  lipgloss.Color("14"),
	}
)

func levelText(l model.Level) string {
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[l]).Render(i18n.T(l.MessageID()))
}

// renderReport prints a human readable strength report.
func renderReport(w io.Writer, r model.StrengthReport) {
	fmt.Fprintln(w, i18n.Tf("cli.report.score", map[string]any{"Score": r.Score, "Level": levelText(r.Level)}))
	fmt.Fprintln(w, i18n.Tf("cli.report.entropy", map[string]any{"Bits": strconv.FormatFloat(r.EntropyBits, 'f', 1, 64)}))
	fmt.Fprintln(w, i18n.Tf("cli.report.crack_time", map[string]any{"CrackTime": i18n.T(r.CrackTime.MessageID())}))
	fmt.Fprintln(w, mutedStyle.Render(i18n.Tf("cli.report.composition", map[string]any{
		"Upper": r.HasUpper, "Lower": r.HasLower, "Numbers": r.HasNumbers, "Symbols": r.HasSymbols,
	})))

	var weak []string
	weak = append(weak, r.CommonWords...)
	weak = append(weak, r.KeyboardPatterns...)
	weak = append(weak, r.DatePatterns...)
	if len(weak) > 0 {
		fmt.Fprintln(w, i18n.Tf("cli.report.weaknesses", map[string]any{"List": strings.Join(weak, ", ")}))
	}
	if len(r.Feedback) > 0 {
		fmt.Fprintln(w, headingStyle.Render(i18n.T("cli.report.feedback")))
		for _, msg := range i18n.All(r.Feedback) {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}

func renderPassword(w io.Writer, pw string) {
	fmt.Fprintln(w, passwordStyle.Render(pw))
}

// historyTable renders entries as a bordered table. Passwords are redacted
// unless reveal is set.
func historyTable(entries []model.HistoryEntry, reveal bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("ID", "PASSWORD", "MODE", "SCORE", "LEVEL", "FAV", "COPIES", "CREATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		pw := security.Redact(e.Password)
		if reveal {
			pw = e.Password
		}
		fav := ""
		if e.Favorite {
			fav = "*"
		}
		t.Row(e.ID, pw, string(e.Mode), strconv.Itoa(e.Score), i18n.T(e.Level.MessageID()), fav,
			strconv.Itoa(e.CopyCount), e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return t.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
