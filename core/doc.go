// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core holds the UI-agnostic facade over the generation engine.
// Persistence and templates are injected through the small interfaces in
// interfaces_db.go; implementations live in internal/db and
// internal/templates.
package core
