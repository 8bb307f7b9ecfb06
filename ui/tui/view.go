// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/internal/i18n"
)

const logo = "🔐 Passforge"

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false).
			BorderBottom(true)
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	pwStyle     = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 2)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barFull    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const barWidth = 30

func scoreBar(score int) string {
	n := score * barWidth / 100
	return barFull.Render(strings.Repeat("█", n)) + barEmpty.Render(strings.Repeat("░", barWidth-n))
}

func reportView(r model.StrengthReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %3d/100 %s\n", scoreBar(r.Score), r.Score, i18n.T(r.Level.MessageID()))
	b.WriteString(i18n.Tf("tui.report.entropy", map[string]any{
		"Bits":  fmt.Sprintf("%.1f", r.EntropyBits),
		"Crack": i18n.T(r.CrackTime.MessageID()),
	}) + "\n")
	for _, f := range i18n.All(r.Feedback) {
		b.WriteString(mutedStyle.Render("• "+f) + "\n")
	}
	return b.String()
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, logo)))
	b.WriteString("\n")

	gen, ana := inactiveTab, inactiveTab
	if m.tab == tabGenerate {
		gen = activeTab
	} else {
		ana = activeTab
	}
	b.WriteString(gen.Render(i18n.T("tui.tab.generate")) + ana.Render(i18n.T("tui.tab.analyze")) + "\n\n")

	if m.tab == tabGenerate {
		source := i18n.T("tui.source.remembered")
		if t := m.currentTemplate(); t != nil {
			source = i18n.Tf("tui.source.template", map[string]any{"Name": t.Name})
		}
		b.WriteString(mutedStyle.Render(source) + "\n")
		if m.result != nil {
			b.WriteString(pwStyle.Render(m.result.Password) + "\n")
			b.WriteString(reportView(m.result.Report))
		}
	} else {
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(reportView(m.report))
	}

	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString(errStyle.Render(m.lastErr.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status) + "\n")
	}

	if m.tab == tabAnalyze {
		b.WriteString(m.help.View(analyzeKeyMap{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}
