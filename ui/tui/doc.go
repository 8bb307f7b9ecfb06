// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive terminal UI started when passforge
// runs without a subcommand. It has two tabs: one generates passwords from
// the remembered settings or a template, the other scores typed input live.
// All logic goes through core.Service.
package tui
