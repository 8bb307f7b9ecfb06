// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import "github.com/atotto/clipboard"

// clipboardWrite is swapped out by tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll
