package in

import (
	"context"

	"refdeck/internal/modules/browse/dto"
	browsein "refdeck/internal/modules/browse/port/in"
)

type CLIHandler struct {
	usecase browsein.Usecase
}

func NewCLIHandler(usecase browsein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Route(ctx context.Context, fragment string) (dto.RouteOutput, error) {
	return h.usecase.ResolveRoute(ctx, fragment)
}
