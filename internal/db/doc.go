// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists the last-used generation settings and the password
// history. It targets SQLite, PostgreSQL and MySQL through Bun and applies
// embedded SQL migrations on open.
package db // import "github.com/toeirei/passforge/internal/db"
