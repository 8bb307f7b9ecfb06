// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package generate produces credentials from GenerationSettings.
//
// A call walks a fixed pipeline: build the alphabet, run the selected
// strategy, reject candidates that trip the security filter, enforce the
// required categories, analyze the result and, when a minimum entropy is
// configured, grow the password and start over. Every loop is bounded; when
// a bound is hit the caller gets a *RetryExhaustedError instead of a
// substituted password.
//
// Generators hold no mutable state and may be shared between goroutines.
package generate
