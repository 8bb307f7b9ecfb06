// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/passforge/core/generate"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
	"github.com/toeirei/passforge/core/strength"
	"github.com/toeirei/passforge/internal/logging"
)

var (
	// ErrHistoryDisabled is returned by history operations when no
	// repository is wired or recording is switched off.
	ErrHistoryDisabled = errors.New("history is disabled")
	// ErrUnknownTemplate is returned for template ids the catalog lacks.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Service ties the generator to settings, history and templates. A zero
// repository disables the matching feature.
type Service struct {
	gen       *generate.Generator
	settings  SettingsRepository
	history   HistoryRepository
	templates TemplateCatalog
	record    bool
	now       func() time.Time
	newID     func() string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSettings wires settings persistence.
func WithSettings(r SettingsRepository) ServiceOption {
	return func(s *Service) { s.settings = r }
}

// WithHistory wires history persistence. record controls whether new
// generations are appended; reads still work when it is false.
func WithHistory(r HistoryRepository, record bool) ServiceOption {
	return func(s *Service) {
		s.history = r
		s.record = record
	}
}

// WithTemplates wires a template catalog.
func WithTemplates(c TemplateCatalog) ServiceOption {
	return func(s *Service) { s.templates = c }
}

// WithClock overrides time.Now for history timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithIDFunc overrides history id generation.
func WithIDFunc(f func() string) ServiceOption {
	return func(s *Service) { s.newID = f }
}

// NewService builds a Service around gen. A nil gen uses generate.New().
func NewService(gen *generate.Generator, opts ...ServiceOption) *Service {
	if gen == nil {
		gen = generate.New()
	}
	s := &Service{
		gen:   gen,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Generate produces one password, remembers the settings and records the
// result in history.
func (s *Service) Generate(ctx context.Context, settings model.GenerationSettings) (model.GenerationResult, error) {
	return s.generate(ctx, settings, "")
}

// GenerateFromTemplate generates with the settings of a catalog template.
// Overrides run in order on a copy of the template settings.
func (s *Service) GenerateFromTemplate(ctx context.Context, id string, overrides ...func(*model.GenerationSettings)) (model.GenerationResult, error) {
	t, settings, err := s.templateSettings(id, overrides)
	if err != nil {
		return model.GenerationResult{}, err
	}
	return s.generate(ctx, settings, t.ID)
}

// GenerateBatchFromTemplate is GenerateBatch with template settings; every
// recorded entry keeps the template ID.
func (s *Service) GenerateBatchFromTemplate(ctx context.Context, id string, n int, overrides ...func(*model.GenerationSettings)) ([]model.GenerationResult, error) {
	t, settings, err := s.templateSettings(id, overrides)
	if err != nil {
		return nil, err
	}
	return s.generateBatch(ctx, settings, n, t.ID)
}

func (s *Service) templateSettings(id string, overrides []func(*model.GenerationSettings)) (model.Template, model.GenerationSettings, error) {
	t, err := s.Template(id)
	if err != nil {
		return model.Template{}, model.GenerationSettings{}, err
	}
	settings := t.Settings
	settings.ExcludedWords = append([]string(nil), settings.ExcludedWords...)
	for _, o := range overrides {
		o(&settings)
	}
	return t, settings, nil
}

func (s *Service) generate(ctx context.Context, settings model.GenerationSettings, templateID string) (model.GenerationResult, error) {
	res, err := s.gen.Generate(settings)
	if err != nil {
		return model.GenerationResult{}, err
	}
	s.remember(ctx, settings)
	res.HistoryID = s.recordResult(ctx, res, templateID)
	return res, nil
}

// GenerateBatch produces n passwords concurrently and records each one.
func (s *Service) GenerateBatch(ctx context.Context, settings model.GenerationSettings, n int) ([]model.GenerationResult, error) {
	return s.generateBatch(ctx, settings, n, "")
}

func (s *Service) generateBatch(ctx context.Context, settings model.GenerationSettings, n int, templateID string) ([]model.GenerationResult, error) {
	results, err := s.gen.GenerateBatch(ctx, settings, n)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, settings)
	for i := range results {
		results[i].HistoryID = s.recordResult(ctx, results[i], templateID)
	}
	return results, nil
}

// remember saves settings as the last used ones. Failures are logged and
// never fail a generation that already succeeded.
func (s *Service) remember(ctx context.Context, settings model.GenerationSettings) {
	if s.settings == nil {
		return
	}
	if err := s.settings.SaveSettings(ctx, settings.Normalized()); err != nil {
		logging.Warnf("could not save settings: %v", err)
	}
}

func (s *Service) recordResult(ctx context.Context, res model.GenerationResult, templateID string) string {
	if s.history == nil || !s.record {
		return ""
	}
	e := model.HistoryEntry{
		ID:          s.newID(),
		Password:    res.Password,
		Fingerprint: security.Fingerprint(res.Password),
		Mode:        res.Mode,
		TemplateID:  templateID,
		Score:       res.Report.Score,
		Level:       res.Report.Level,
		EntropyBits: res.Report.EntropyBits,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.history.AppendHistory(ctx, e); err != nil {
		logging.Warnf("could not record history entry: %v", err)
		return ""
	}
	logging.Debugf("recorded history entry %s for %s", e.ID, security.Redact(res.Password))
	return e.ID
}

// Analyze scores an arbitrary password with the default pool sizes.
func (s *Service) Analyze(pw string) model.StrengthReport {
	return strength.Analyze(pw)
}

// LastSettings returns the stored settings or the defaults.
func (s *Service) LastSettings(ctx context.Context) (model.GenerationSettings, error) {
	if s.settings == nil {
		return model.DefaultSettings(), nil
	}
	st, ok, err := s.settings.LoadSettings(ctx)
	if err != nil {
		return model.GenerationSettings{}, err
	}
	if !ok {
		return model.DefaultSettings(), nil
	}
	return st.Normalized(), nil
}

// ResetSettings forgets the stored settings.
func (s *Service) ResetSettings(ctx context.Context) error {
	if s.settings == nil {
		return nil
	}
	return s.settings.ResetSettings(ctx)
}

// Templates lists the catalog, or nothing when none is wired.
func (s *Service) Templates() []model.Template {
	if s.templates == nil {
		return nil
	}
	return s.templates.List()
}

// Template returns one catalog entry.
func (s *Service) Template(id string) (model.Template, error) {
	if s.templates != nil {
		if t, ok := s.templates.Get(id); ok {
			return t, nil
		}
	}
	return model.Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

func (s *Service) historyRepo() (HistoryRepository, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history, nil
}

// History lists entries newest first.
func (s *Service) History(ctx context.Context, f model.HistoryFilter) ([]model.HistoryEntry, error) {
	h, err := s.historyRepo()
	if err != nil {
		return nil, err
	}
	return h.ListHistory(ctx, f)
}

// Entry returns one history entry.
func (s *Service) Entry(ctx context.Context, id string) (model.HistoryEntry, error) {
	h, err := s.historyRepo()
	if err != nil {
		return model.HistoryEntry{}, err
	}
	return h.GetHistory(ctx, id)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	h, err := s.historyRepo()
	if err != nil {
		return false, err
	}
	e, err := h.GetHistory(ctx, id)
	if err != nil {
		return false, err
	}
	if err := h.SetFavorite(ctx, id, !e.Favorite); err != nil {
		return false, err
	}
	return !e.Favorite, nil
}

// RecordCopy counts a clipboard copy and returns the entry for copying.
func (s *Service) RecordCopy(ctx context.Context, id string) (model.HistoryEntry, error) {
	h, err := s.historyRepo()
	if err != nil {
		return model.HistoryEntry{}, err
	}
	if err := h.IncrementCopyCount(ctx, id); err != nil {
		return model.HistoryEntry{}, err
	}
	return h.GetHistory(ctx, id)
}

// DeleteEntry removes one entry.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	h, err := s.historyRepo()
	if err != nil {
		return err
	}
	return h.DeleteHistory(ctx, id)
}

// ClearHistory removes entries and returns how many were removed.
func (s *Service) ClearHistory(ctx context.Context, keepFavorites bool) (int, error) {
	h, err := s.historyRepo()
	if err != nil {
		return 0, err
	}
	return h.ClearHistory(ctx, keepFavorites)
}

// Stats summarises the whole history. Reused counts entries whose password
// fingerprint appears more than once.
func (s *Service) Stats(ctx context.Context) (model.HistoryStats, error) {
	entries, err := s.History(ctx, model.HistoryFilter{})
	if err != nil {
		return model.HistoryStats{}, err
	}
	return computeStats(entries), nil
}

func computeStats(entries []model.HistoryEntry) model.HistoryStats {
	var st model.HistoryStats
	seen := make(map[string]int, len(entries))
	total := 0
	for _, e := range entries {
		st.Total++
		total += e.Score
		st.TotalCopies += e.CopyCount
		if e.Favorite {
			st.Favorites++
		}
		if e.Level.Rank() < model.LevelMedium.Rank() {
			st.Weak++
		}
		fp := e.Fingerprint
		if fp == "" {
			fp = security.Fingerprint(e.Password)
		}
		seen[fp]++
	}
	for _, n := range seen {
		if n > 1 {
			st.Reused += n
		}
	}
	if st.Total > 0 {
		st.AverageScore = float64(total) / float64(st.Total)
	}
	return st
}
