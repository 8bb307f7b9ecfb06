// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/passforge/core"
)

// Run starts the full-screen UI and blocks until the user quits.
func Run(svc *core.Service) error {
	_, err := tea.NewProgram(
		New(svc),
		tea.WithAltScreen(),
	).Run()
	return err
}
