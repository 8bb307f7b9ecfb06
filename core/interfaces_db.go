// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/passforge/core/model"
)

// SettingsRepository persists the last-used generation settings.
type SettingsRepository interface {
	// LoadSettings returns the stored settings and false when none exist.
	LoadSettings(ctx context.Context) (model.GenerationSettings, bool, error)
	SaveSettings(ctx context.Context, s model.GenerationSettings) error
	ResetSettings(ctx context.Context) error
}

// HistoryRepository stores generated passwords.
type HistoryRepository interface {
	AppendHistory(ctx context.Context, e model.HistoryEntry) error
	ListHistory(ctx context.Context, f model.HistoryFilter) ([]model.HistoryEntry, error)
	// GetHistory returns model.ErrNotFound for unknown ids.
	GetHistory(ctx context.Context, id string) (model.HistoryEntry, error)
	SetFavorite(ctx context.Context, id string, favorite bool) error
	IncrementCopyCount(ctx context.Context, id string) error
	DeleteHistory(ctx context.Context, id string) error
	// ClearHistory returns the number of removed entries.
	ClearHistory(ctx context.Context, keepFavorites bool) (int, error)
}

// Store is the union implemented by internal/db.
type Store interface {
	SettingsRepository
	HistoryRepository
	Close() error
}

// StoreFactory opens a Store for a database type and DSN.
type StoreFactory interface {
	NewStoreFromDSN(dbType, dsn string) (Store, error)
}

// TemplateCatalog resolves named presets.
type TemplateCatalog interface {
	List() []model.Template
	Get(id string) (model.Template, bool)
}
