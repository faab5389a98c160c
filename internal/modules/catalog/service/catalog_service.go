package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"refdeck/internal/modules/catalog/domain"
	catalogout "refdeck/internal/modules/catalog/port/out"
	"refdeck/internal/platform/clock"
	apperrors "refdeck/internal/platform/errors"
)

type CatalogService struct {
	clock     clock.Clock
	source    catalogout.DocumentSource
	catalogue catalogout.CatalogueStore
	about     catalogout.AboutStore
	logger    *zap.Logger
	chapters  int

	mu      sync.RWMutex
	current domain.Snapshot
	failure error
}

func NewCatalogService(clock clock.Clock, source catalogout.DocumentSource, catalogue catalogout.CatalogueStore, about catalogout.AboutStore, logger *zap.Logger, previewChapters int) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if previewChapters <= 0 {
		previewChapters = domain.DefaultPreviewChapters
	}
	return &CatalogService{
		clock:     clock,
		source:    source,
		catalogue: catalogue,
		about:     about,
		logger:    logger,
		chapters:  previewChapters,
	}
}

// Load fetches and indexes the content once. A failed load is final: later
// calls return the same failure without fetching again.
func (s *CatalogService) Load(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.Loaded() {
		return s.current, nil
	}
	if s.failure != nil {
		return domain.Snapshot{}, s.failure
	}
	snap, err := s.build(ctx)
	if err != nil {
		s.failure = err
		return domain.Snapshot{}, err
	}
	s.current = snap
	return snap, nil
}

// Reload rebuilds every index from a fresh fetch. The previous snapshot stays
// current when the fetch fails.
func (s *CatalogService) Reload(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.build(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.current = snap
	s.failure = nil
	return snap, nil
}

func (s *CatalogService) Snapshot(context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failure != nil {
		return domain.Snapshot{}, s.failure
	}
	if !s.current.Loaded() {
		return domain.Snapshot{}, apperrors.ErrNotLoaded
	}
	return s.current, nil
}

func (s *CatalogService) Preview(ctx context.Context, slug string) (domain.TopicPreview, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.TopicPreview{}, err
	}
	preview, ok := domain.Preview(snap.Index, slug, snap.Catalogue, s.chapters)
	if !ok {
		return domain.TopicPreview{}, fmt.Errorf("topic %q: %w", slug, apperrors.ErrNotFound)
	}
	return preview, nil
}

func (s *CatalogService) Overview(ctx context.Context) (domain.Overview, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	return domain.BuildOverview(snap.Index, snap.Catalogue), nil
}

func (s *CatalogService) build(ctx context.Context) (domain.Snapshot, error) {
	doc, rejected, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("content load failed", zap.String("source", s.source.Location()), zap.Error(err))
		return domain.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrLoadFailed, err)
	}
	idx, dropped := domain.Build(doc)
	rejected = append(rejected, dropped...)
	for _, r := range rejected {
		s.logger.Warn("record rejected",
			zap.String("kind", string(r.Kind)),
			zap.String("id", r.ID),
			zap.String("reason", r.Reason),
		)
	}

	catalogue, err := s.catalogue.Load(ctx)
	if err != nil {
		s.logger.Warn("catalogue copy unavailable", zap.Error(err))
		catalogue = domain.Catalogue{}
	}
	about, err := s.about.Load(ctx)
	if err != nil {
		s.logger.Warn("about copy unavailable", zap.Error(err))
		about = domain.AboutPage{Title: "About"}
	}

	snap := domain.Snapshot{
		Index:      idx,
		Catalogue:  catalogue,
		About:      about,
		Rejections: rejected,
		Source:     s.source.Location(),
		LoadedAt:   s.clock.Now(),
	}
	counts := idx.Counts()
	s.logger.Info("content loaded",
		zap.String("source", snap.Source),
		zap.String("variant", string(idx.Variant())),
		zap.Int("topics", counts.Topics),
		zap.Int("cards", counts.Cards),
		zap.Int("orphans", counts.Orphans),
		zap.Int("rejected", len(rejected)),
	)
	return snap, nil
}
