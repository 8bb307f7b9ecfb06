// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/toeirei/passforge/core/model"
)

// memStore is an in-memory Store used by the facade tests.
type memStore struct {
	mu       sync.Mutex
	settings *model.GenerationSettings
	entries  map[string]model.HistoryEntry
	saveErr  error
	closed   bool
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]model.HistoryEntry{}}
}

func (m *memStore) LoadSettings(context.Context) (model.GenerationSettings, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return model.GenerationSettings{}, false, nil
	}
	return *m.settings, true, nil
}

func (m *memStore) SaveSettings(_ context.Context, s model.GenerationSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = &s
	return nil
}

func (m *memStore) ResetSettings(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = nil
	return nil
}

func (m *memStore) AppendHistory(_ context.Context, e model.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[e.ID]; ok {
		return model.ErrDuplicate
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memStore) ListHistory(_ context.Context, f model.HistoryFilter) ([]model.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.HistoryEntry
	for _, e := range m.entries {
		if f.FavoritesOnly && !e.Favorite {
			continue
		}
		if f.Mode != "" && e.Mode != f.Mode {
			continue
		}
		if e.Score < f.MinScore {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memStore) GetHistory(_ context.Context, id string) (model.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return model.HistoryEntry{}, model.ErrNotFound
	}
	return e, nil
}

func (m *memStore) update(id string, fn func(*model.HistoryEntry)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return model.ErrNotFound
	}
	fn(&e)
	m.entries[id] = e
	return nil
}

func (m *memStore) SetFavorite(_ context.Context, id string, fav bool) error {
	return m.update(id, func(e *model.HistoryEntry) { e.Favorite = fav })
}

func (m *memStore) IncrementCopyCount(_ context.Context, id string) error {
	return m.update(id, func(e *model.HistoryEntry) { e.CopyCount++ })
}

func (m *memStore) DeleteHistory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memStore) ClearHistory(_ context.Context, keepFavorites bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if keepFavorites && e.Favorite {
			continue
		}
		delete(m.entries, id)
		n++
	}
	return n, nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}

type memFactory struct {
	store *memStore
	err   error
}

func (f memFactory) NewStoreFromDSN(string, string) (Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store, nil
}

type mapCatalog map[string]model.Template

func (c mapCatalog) List() []model.Template {
	out := make([]model.Template, 0, len(c))
	for _, t := range c {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c mapCatalog) Get(id string) (model.Template, bool) {
	t, ok := c[id]
	return t, ok
}

var errBoom = errors.New("boom")
