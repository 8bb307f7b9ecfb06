// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// BackupSchemaVersion is written into every export.
const BackupSchemaVersion = 1

// BackupData is the container written by history export.
type BackupData struct {
	// SchemaVersion helps in handling format changes during import.
	SchemaVersion int `json:"schema_version"`

	Settings *GenerationSettings `json:"settings,omitempty"`
	History  []HistoryEntry      `json:"history"`
}
