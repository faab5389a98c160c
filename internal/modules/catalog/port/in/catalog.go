package in

import (
	"context"

	"refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/catalog/dto"
)

type Usecase interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Reload(ctx context.Context) (domain.Snapshot, error)
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Report(ctx context.Context) (dto.LoadReport, error)
	Preview(ctx context.Context, slug string) (dto.PreviewOutput, error)
	Overview(ctx context.Context) ([]dto.OverviewGroupOutput, error)
	Tags(ctx context.Context) ([]string, error)
}
