package in

import (
	"context"

	"refdeck/internal/modules/preference/dto"
)

type Usecase interface {
	Theme(ctx context.Context) (dto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (dto.ThemeOutput, error)
	SetTheme(ctx context.Context, name string) (dto.ThemeOutput, error)
}
