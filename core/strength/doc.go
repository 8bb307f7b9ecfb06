// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package strength scores credentials. Analyze is a pure function of its
// input: it keeps no state, performs no I/O and never fails; the empty
// string yields a zero-score report.
//
// Scores combine length, character variety, uniqueness and search-space
// entropy, minus penalties for recognisable structure (runs, sequences,
// common words, keyboard walks and dates). Feedback is emitted as message
// identifiers so the caller decides how to render it.
package strength
