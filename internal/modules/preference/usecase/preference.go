package usecase

import (
	"context"
	"strings"

	"refdeck/internal/modules/preference/domain"
	"refdeck/internal/modules/preference/dto"
	preferencein "refdeck/internal/modules/preference/port/in"
	"refdeck/internal/modules/preference/service"
)

type Interactor struct {
	svc *service.PreferenceService
}

func NewInteractor(svc *service.PreferenceService) preferencein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Theme(ctx context.Context) (dto.ThemeOutput, error) {
	theme, stored, err := i.svc.Theme(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(theme), Stored: stored}, nil
}

func (i *Interactor) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	theme, err := i.svc.ToggleTheme(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(theme), Stored: true}, nil
}

func (i *Interactor) SetTheme(ctx context.Context, name string) (dto.ThemeOutput, error) {
	theme := domain.Theme(strings.ToLower(strings.TrimSpace(name)))
	if err := i.svc.SetTheme(ctx, theme); err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(theme), Stored: true}, nil
}
