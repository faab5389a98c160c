package in

import (
	"context"

	"refdeck/internal/modules/search/dto"
)

type Usecase interface {
	Search(ctx context.Context, input dto.SearchInput) ([]dto.CardOutput, error)
	TopicOptions(ctx context.Context, categorySlug string) ([]dto.TopicOptionOutput, error)
}
