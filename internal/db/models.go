// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"time"

	"github.com/toeirei/passforge/core/model"
	"github.com/uptrace/bun"
)

// SettingsModel maps the settings table. Value holds JSON.
type SettingsModel struct {
	bun.BaseModel `bun:"table:settings"`
	Name          string    `bun:"name,pk"`
	Value         string    `bun:"value"`
	UpdatedAt     time.Time `bun:"updated_at"`
}

// HistoryModel maps the history table.
type HistoryModel struct {
	bun.BaseModel `bun:"table:history"`
	ID            string    `bun:"id,pk"`
	Password      string    `bun:"password"`
	Fingerprint   string    `bun:"fingerprint"`
	Mode          string    `bun:"mode"`
	TemplateID    string    `bun:"template_id"`
	Score         int       `bun:"score"`
	Level         string    `bun:"level"`
	EntropyBits   float64   `bun:"entropy_bits"`
	Favorite      bool      `bun:"favorite"`
	CopyCount     int       `bun:"copy_count"`
	CreatedAt     time.Time `bun:"created_at"`
}

func historyModelToModel(h HistoryModel) model.HistoryEntry {
	return model.HistoryEntry{
		ID:          h.ID,
		Password:    h.Password,
		Fingerprint: h.Fingerprint,
		Mode:        model.Mode(h.Mode),
		TemplateID:  h.TemplateID,
		Score:       h.Score,
		Level:       model.Level(h.Level),
		EntropyBits: h.EntropyBits,
		Favorite:    h.Favorite,
		CopyCount:   h.CopyCount,
		CreatedAt:   h.CreatedAt.UTC(),
	}
}

func historyModelFromModel(e model.HistoryEntry) HistoryModel {
	return HistoryModel{
		ID:          e.ID,
		Password:    e.Password,
		Fingerprint: e.Fingerprint,
		Mode:        string(e.Mode),
		TemplateID:  e.TemplateID,
		Score:       e.Score,
		Level:       string(e.Level),
		EntropyBits: e.EntropyBits,
		Favorite:    e.Favorite,
		CopyCount:   e.CopyCount,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}
