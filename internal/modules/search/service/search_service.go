package service

import (
	"context"

	catalog "refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/search/domain"
	searchout "refdeck/internal/modules/search/port/out"
)

type SearchService struct {
	catalog searchout.Catalog
}

func NewSearchService(catalog searchout.Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search filters every card by sel. The index is returned for resolving card
// context.
func (s *SearchService) Search(ctx context.Context, sel domain.Selection) ([]catalog.Card, *catalog.Index, error) {
	snap, err := s.catalog.Content(ctx)
	if err != nil {
		return nil, nil, err
	}
	return domain.Filter(snap.Index, snap.Index.Cards(), sel), snap.Index, nil
}

func (s *SearchService) TopicOptions(ctx context.Context, categorySlug string) ([]catalog.Topic, error) {
	snap, err := s.catalog.Content(ctx)
	if err != nil {
		return nil, err
	}
	return domain.TopicOptions(snap.Index, categorySlug), nil
}
