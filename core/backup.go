// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
)

// ImportSummary reports what ImportHistory did.
type ImportSummary struct {
	Imported int
	Skipped  int
	Settings bool
}

// Backup collects the stored settings and the full history.
func (s *Service) Backup(ctx context.Context) (*model.BackupData, error) {
	h, err := s.historyRepo()
	if err != nil {
		return nil, err
	}
	entries, err := h.ListHistory(ctx, model.HistoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	data := &model.BackupData{SchemaVersion: model.BackupSchemaVersion, History: entries}
	if s.settings != nil {
		if st, ok, err := s.settings.LoadSettings(ctx); err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		} else if ok {
			data.Settings = &st
		}
	}
	return data, nil
}

// ExportHistory writes a zstd-compressed JSON backup to w and returns the
// number of exported entries.
func (s *Service) ExportHistory(ctx context.Context, w io.Writer) (int, error) {
	data, err := s.Backup(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteBackup(data, w); err != nil {
		return 0, err
	}
	return len(data.History), nil
}

// WriteBackup writes compressed JSON backup data to w.
func WriteBackup(data *model.BackupData, w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	return zw.Close()
}

// ReadBackup decodes a backup written by WriteBackup.
func ReadBackup(r io.Reader) (*model.BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	if data.SchemaVersion > model.BackupSchemaVersion {
		return nil, fmt.Errorf("backup schema version %d is newer than supported %d", data.SchemaVersion, model.BackupSchemaVersion)
	}
	return &data, nil
}

// ImportHistory merges a backup into the repositories. Entries whose id
// already exists are skipped. Stored settings are replaced only when
// withSettings is set.
func (s *Service) ImportHistory(ctx context.Context, r io.Reader, withSettings bool) (ImportSummary, error) {
	h, err := s.historyRepo()
	if err != nil {
		return ImportSummary{}, err
	}
	data, err := ReadBackup(r)
	if err != nil {
		return ImportSummary{}, err
	}
	return restore(ctx, data, h, s.settings, withSettings)
}

func restore(ctx context.Context, data *model.BackupData, h HistoryRepository, st SettingsRepository, withSettings bool) (ImportSummary, error) {
	var sum ImportSummary
	for _, e := range data.History {
		if e.Fingerprint == "" {
			e.Fingerprint = security.Fingerprint(e.Password)
		}
		if err := h.AppendHistory(ctx, e); err != nil {
			if errors.Is(err, model.ErrDuplicate) {
				sum.Skipped++
				continue
			}
			return sum, fmt.Errorf("import entry %s: %w", e.ID, err)
		}
		sum.Imported++
	}
	if withSettings && st != nil && data.Settings != nil {
		if err := st.SaveSettings(ctx, *data.Settings); err != nil {
			return sum, fmt.Errorf("import settings: %w", err)
		}
		sum.Settings = true
	}
	return sum, nil
}

// Migrate copies settings and history from the service's repositories into
// a newly opened target store.
func (s *Service) Migrate(ctx context.Context, factory StoreFactory, targetType, targetDsn string) (ImportSummary, error) {
	data, err := s.Backup(ctx)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("export backup: %w", err)
	}
	target, err := factory.NewStoreFromDSN(targetType, targetDsn)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("init target store: %w", err)
	}
	defer func() { _ = target.Close() }()
	sum, err := restore(ctx, data, target, target, true)
	if err != nil {
		return sum, fmt.Errorf("import to target: %w", err)
	}
	return sum, nil
}
