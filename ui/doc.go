// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of Passforge: the cobra based CLI in
// ui/cli and the interactive bubbletea screen in ui/tui. Both drive the same
// core.Service.
package ui
