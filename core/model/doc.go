// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the core data models used across Passforge. These are
// plain values passed by parameter between the engine, the facades and the
// repository adapters; none of them carries behaviour beyond small helpers.
package model
