package in

import (
	"context"

	"refdeck/internal/modules/preference/dto"
	preferencein "refdeck/internal/modules/preference/port/in"
)

type CLIHandler struct {
	usecase preferencein.Usecase
}

func NewCLIHandler(usecase preferencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.Theme(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.ToggleTheme(ctx)
}

func (h CLIHandler) Set(ctx context.Context, name string) (dto.ThemeOutput, error) {
	return h.usecase.SetTheme(ctx, name)
}
