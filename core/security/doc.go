// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security holds the two primitives every generator depends on: a
// cryptographically secure source of uniform integers and helpers that keep
// credentials out of logs and formatted output.
package security
