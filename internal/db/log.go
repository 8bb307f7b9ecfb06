// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/toeirei/passforge/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf(format, v...)
}
