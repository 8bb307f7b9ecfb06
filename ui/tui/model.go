// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passforge/core"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/internal/i18n"
	"github.com/toeirei/passforge/ui/tui/util"
)

type tab int

const (
	tabGenerate tab = iota
	tabAnalyze
)

type generatedMsg struct {
	res model.GenerationResult
	err error
}

type statusMsg struct {
	text string
	err  error
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// Model is the root bubbletea model.
type Model struct {
	svc       *core.Service
	keys      KeyMap
	help      help.Model
	size      util.Size
	tab       tab
	templates []model.Template
	// template is an index into templates; -1 means remembered settings.
	template int

	result  *model.GenerationResult
	report  model.StrengthReport
	input   textinput.Model
	status  string
	lastErr error
}

// New builds the model around svc.
func New(svc *core.Service) *Model {
	in := textinput.New()
	in.Placeholder = i18n.T("tui.analyze.placeholder")
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = model.MaxLength * 4

	return &Model{
		svc:       svc,
		keys:      DefaultKeyMap,
		help:      help.New(),
		templates: svc.Templates(),
		template:  -1,
		input:     in,
		report:    svc.Analyze(""),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.generate()
}

func (m *Model) generate() tea.Cmd {
	svc, tmpl := m.svc, m.currentTemplate()
	return func() tea.Msg {
		ctx := context.Background()
		if tmpl != nil {
			res, err := svc.GenerateFromTemplate(ctx, tmpl.ID)
			return generatedMsg{res: res, err: err}
		}
		settings, err := svc.LastSettings(ctx)
		if err != nil {
			return generatedMsg{err: err}
		}
		res, err := svc.Generate(ctx, settings)
		return generatedMsg{res: res, err: err}
	}
}

func (m *Model) currentTemplate() *model.Template {
	if m.template < 0 || m.template >= len(m.templates) {
		return nil
	}
	return &m.templates[m.template]
}

func (m *Model) copyCurrent() tea.Cmd {
	if m.result == nil {
		return nil
	}
	svc, res := m.svc, *m.result
	return func() tea.Msg {
		if err := clipboardWrite(res.Password); err != nil {
			return statusMsg{err: err}
		}
		if res.HistoryID != "" {
			if _, err := svc.RecordCopy(context.Background(), res.HistoryID); err != nil {
				return statusMsg{err: err}
			}
		}
		return statusMsg{text: i18n.T("tui.status.copied")}
	}
}

func (m *Model) toggleFavorite() tea.Cmd {
	if m.result == nil || m.result.HistoryID == "" {
		return nil
	}
	svc, id := m.svc, m.result.HistoryID
	return func() tea.Msg {
		fav, err := svc.ToggleFavorite(context.Background(), id)
		if err != nil {
			return statusMsg{err: err}
		}
		if fav {
			return statusMsg{text: i18n.T("tui.status.favorite_on")}
		}
		return statusMsg{text: i18n.T("tui.status.favorite_off")}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return m, nil
	}

	switch msg := msg.(type) {
	case generatedMsg:
		m.lastErr = msg.err
		m.status = ""
		if msg.err == nil {
			res := msg.res
			m.result = &res
		}
		return m, nil
	case statusMsg:
		m.lastErr = msg.err
		m.status = msg.text
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			return m, m.switchTab()
		}
		if m.tab == tabAnalyze {
			return m, m.updateAnalyze(msg)
		}
		return m, m.updateGenerate(msg)
	}

	if m.tab == tabAnalyze {
		return m, m.updateAnalyze(msg)
	}
	return m, nil
}

func (m *Model) switchTab() tea.Cmd {
	if m.tab == tabGenerate {
		m.tab = tabAnalyze
		return m.input.Focus()
	}
	m.tab = tabGenerate
	m.input.Blur()
	return nil
}

func (m *Model) updateGenerate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Generate):
		return m.generate()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrent()
	case key.Matches(msg, m.keys.Favorite):
		return m.toggleFavorite()
	case key.Matches(msg, m.keys.Template):
		m.template++
		if m.template >= len(m.templates) {
			m.template = -1
		}
		return m.generate()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) updateAnalyze(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Reveal) {
		if m.input.EchoMode == textinput.EchoPassword {
			m.input.EchoMode = textinput.EchoNormal
		} else {
			m.input.EchoMode = textinput.EchoPassword
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.report = m.svc.Analyze(m.input.Value())
	return cmd
}

var _ tea.Model = (*Model)(nil)
