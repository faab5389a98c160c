package usecase

import (
	"context"

	catalog "refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/search/domain"
	"refdeck/internal/modules/search/dto"
	searchin "refdeck/internal/modules/search/port/in"
	"refdeck/internal/modules/search/service"
)

type Interactor struct {
	svc *service.SearchService
}

func NewInteractor(svc *service.SearchService) searchin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.CardOutput, error) {
	cards, idx, err := i.svc.Search(ctx, domain.Selection{
		Category: input.Category,
		Topic:    input.Topic,
		Tag:      input.Tag,
		Term:     input.Term,
	})
	if err != nil {
		return nil, err
	}
	if input.Limit > 0 && len(cards) > input.Limit {
		cards = cards[:input.Limit]
	}
	out := make([]dto.CardOutput, 0, len(cards))
	for _, card := range cards {
		out = append(out, toCardOutput(idx, card))
	}
	return out, nil
}

func (i *Interactor) TopicOptions(ctx context.Context, categorySlug string) ([]dto.TopicOptionOutput, error) {
	topics, err := i.svc.TopicOptions(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopicOptionOutput, 0, len(topics))
	for _, topic := range topics {
		out = append(out, dto.TopicOptionOutput{Slug: topic.Slug, Title: topic.Title})
	}
	return out, nil
}

func toCardOutput(idx *catalog.Index, card catalog.Card) dto.CardOutput {
	lineage := idx.Lineage(card)
	out := dto.CardOutput{
		ID:          card.ID,
		Question:    card.Question,
		Subtitle:    card.Subtitle,
		Answer:      card.Answer,
		Explanation: card.Explanation,
		Reference:   card.Reference,
		Tags:        card.Tags,
		Orphan:      idx.IsOrphan(card),
	}
	if lineage.HasTopic {
		out.TopicSlug = lineage.Topic.Slug
		out.TopicTitle = lineage.Topic.Title
	}
	if lineage.HasSubtopic {
		out.Subtopic = lineage.Subtopic.Title
	}
	if lineage.HasCategory {
		out.Category = lineage.Category.Title
	}
	return out
}
