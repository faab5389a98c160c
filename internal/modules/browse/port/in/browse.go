package in

import (
	"context"

	"refdeck/internal/modules/browse/dto"
)

type Usecase interface {
	ResolveRoute(ctx context.Context, fragment string) (dto.RouteOutput, error)
}
