package in

import (
	"context"

	"refdeck/internal/modules/catalog/dto"
	catalogin "refdeck/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Check loads the content and reports what was indexed and rejected.
func (h CLIHandler) Check(ctx context.Context) (dto.LoadReport, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return dto.LoadReport{}, err
	}
	return h.usecase.Report(ctx)
}

func (h CLIHandler) Preview(ctx context.Context, slug string) (dto.PreviewOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return dto.PreviewOutput{}, err
	}
	return h.usecase.Preview(ctx, slug)
}

func (h CLIHandler) Overview(ctx context.Context) ([]dto.OverviewGroupOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return nil, err
	}
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Tags(ctx context.Context) ([]string, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return nil, err
	}
	return h.usecase.Tags(ctx)
}
