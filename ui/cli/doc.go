// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Passforge using Cobra.
// It wires configuration, logging, the database and the template catalog into
// a core.Service and keeps command handlers thin.
package cli
