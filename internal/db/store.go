// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/toeirei/passforge/core/model"
	"github.com/uptrace/bun"
)

// lastSettingsKey names the settings row holding the last-used settings.
const lastSettingsKey = "last_generation"

// Store persists settings and history through Bun. It satisfies both
// core.SettingsRepository and core.HistoryRepository.
type Store struct {
	bun    *bun.DB
	dbType string
}

// BunDB exposes the underlying Bun handle for tests and tooling.
func (s *Store) BunDB() *bun.DB { return s.bun }

// Type returns the configured database type.
func (s *Store) Type() string { return s.dbType }

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.bun == nil {
		return nil
	}
	return s.bun.Close()
}

// LoadSettings returns the last saved settings. The boolean is false when
// nothing has been saved yet.
func (s *Store) LoadSettings(ctx context.Context) (model.GenerationSettings, bool, error) {
	var row SettingsModel
	err := s.bun.NewSelect().Model(&row).Where("name = ?", lastSettingsKey).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(MapDBError(err), ErrNotFound) {
			return model.GenerationSettings{}, false, nil
		}
		return model.GenerationSettings{}, false, fmt.Errorf("load settings: %w", err)
	}
	var out model.GenerationSettings
	if err := json.Unmarshal([]byte(row.Value), &out); err != nil {
		return model.GenerationSettings{}, false, fmt.Errorf("decode settings: %w", err)
	}
	return out, true, nil
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(ctx context.Context, settings model.GenerationSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*SettingsModel)(nil)).Where("name = ?", lastSettingsKey).Exec(ctx); err != nil {
			return MapDBError(err)
		}
		_, err := tx.NewInsert().Model(&SettingsModel{
			Name:      lastSettingsKey,
			Value:     string(data),
			UpdatedAt: time.Now().UTC(),
		}).Exec(ctx)
		return MapDBError(err)
	})
}

// ResetSettings removes the stored settings.
func (s *Store) ResetSettings(ctx context.Context) error {
	_, err := s.bun.NewDelete().Model((*SettingsModel)(nil)).Where("name = ?", lastSettingsKey).Exec(ctx)
	return MapDBError(err)
}

// AppendHistory inserts a new entry.
func (s *Store) AppendHistory(ctx context.Context, e model.HistoryEntry) error {
	m := historyModelFromModel(e)
	if _, err := s.bun.NewInsert().Model(&m).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	return nil
}

// ListHistory returns entries newest first.
func (s *Store) ListHistory(ctx context.Context, f model.HistoryFilter) ([]model.HistoryEntry, error) {
	var rows []HistoryModel
	q := s.bun.NewSelect().Model(&rows).OrderExpr("created_at DESC").OrderExpr("id DESC")
	if f.FavoritesOnly {
		q = q.Where("favorite = ?", true)
	}
	if f.Mode != "" {
		q = q.Where("mode = ?", string(f.Mode))
	}
	if f.MinScore > 0 {
		q = q.Where("score >= ?", f.MinScore)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	out := make([]model.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, historyModelToModel(r))
	}
	return out, nil
}

// GetHistory returns the entry with the given id or ErrNotFound.
func (s *Store) GetHistory(ctx context.Context, id string) (model.HistoryEntry, error) {
	var row HistoryModel
	if err := s.bun.NewSelect().Model(&row).Where("id = ?", id).Limit(1).Scan(ctx); err != nil {
		return model.HistoryEntry{}, MapDBError(err)
	}
	return historyModelToModel(row), nil
}

// SetFavorite sets the favorite flag on an entry.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := s.bun.NewUpdate().Model((*HistoryModel)(nil)).
		Set("favorite = ?", favorite).
		Where("id = ?", id).
		Exec(ctx)
	return affectedOne(res, err)
}

// IncrementCopyCount bumps the copy counter of an entry by one.
func (s *Store) IncrementCopyCount(ctx context.Context, id string) error {
	res, err := s.bun.NewUpdate().Model((*HistoryModel)(nil)).
		Set("copy_count = copy_count + 1").
		Where("id = ?", id).
		Exec(ctx)
	return affectedOne(res, err)
}

// DeleteHistory removes one entry.
func (s *Store) DeleteHistory(ctx context.Context, id string) error {
	res, err := s.bun.NewDelete().Model((*HistoryModel)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOne(res, err)
}

// ClearHistory removes all entries, or all non-favorites when keepFavorites
// is set, and reports how many rows went away.
func (s *Store) ClearHistory(ctx context.Context, keepFavorites bool) (int, error) {
	query := "DELETE FROM history"
	var args []any
	if keepFavorites {
		query += " WHERE favorite = ?"
		args = append(args, false)
	}
	res, err := ExecRaw(ctx, s.bun, query, args...)
	if err != nil {
		return 0, MapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func affectedOne(res interface{ RowsAffected() (int64, error) }, err error) error {
	if err != nil {
		return MapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
