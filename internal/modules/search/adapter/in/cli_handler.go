package in

import (
	"context"

	"refdeck/internal/modules/search/dto"
	searchin "refdeck/internal/modules/search/port/in"
)

type CLIHandler struct {
	usecase searchin.Usecase
}

func NewCLIHandler(usecase searchin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, category, topic, tag, term string, limit int) ([]dto.CardOutput, error) {
	return h.usecase.Search(ctx, dto.SearchInput{Category: category, Topic: topic, Tag: tag, Term: term, Limit: limit})
}

func (h CLIHandler) Topics(ctx context.Context, categorySlug string) ([]dto.TopicOptionOutput, error) {
	return h.usecase.TopicOptions(ctx, categorySlug)
}
