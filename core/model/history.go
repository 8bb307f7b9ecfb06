// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "time"

// HistoryEntry is one generated password as recorded by a history repository.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Password    string    `json:"password"`
	Fingerprint string    `json:"fingerprint"`
	Mode        Mode      `json:"mode"`
	TemplateID  string    `json:"template_id,omitempty"`
	Score       int       `json:"score"`
	Level       Level     `json:"level"`
	EntropyBits float64   `json:"entropy_bits"`
	Favorite    bool      `json:"favorite"`
	CopyCount   int       `json:"copy_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryFilter narrows ListHistory results. Zero values mean "no filter".
type HistoryFilter struct {
	FavoritesOnly bool
	Mode          Mode
	MinScore      int
	Limit         int
}

// HistoryStats summarises the recorded history.
type HistoryStats struct {
	Total        int     `json:"total"`
	Favorites    int     `json:"favorites"`
	AverageScore float64 `json:"average_score"`
	Reused       int     `json:"reused"`
	// Weak counts entries rated below medium.
	Weak        int `json:"weak"`
	TotalCopies int `json:"total_copies"`
}

// Template is a named preset used to populate GenerationSettings.
type Template struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Settings    GenerationSettings `json:"settings" yaml:"settings"`
}
