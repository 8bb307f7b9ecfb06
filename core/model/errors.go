// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "errors"

var (
	// ErrNotFound is returned by repositories for unknown records.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a record with the same key exists.
	ErrDuplicate = errors.New("duplicate record")
)
