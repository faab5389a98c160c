package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"refdeck/internal/modules/preference/domain"
	preferenceout "refdeck/internal/modules/preference/port/out"
	apperrors "refdeck/internal/platform/errors"
)

type PreferenceService struct {
	store  preferenceout.Store
	logger *zap.Logger
}

func NewPreferenceService(store preferenceout.Store, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{store: store, logger: logger}
}

// Theme returns the stored theme, or the default when nothing valid is stored.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, bool, error) {
	value, ok, err := s.store.Get(ctx, domain.ThemeKey)
	if err != nil {
		return domain.DefaultTheme, false, err
	}
	if !ok {
		return domain.DefaultTheme, false, nil
	}
	theme := domain.ParseTheme(value)
	if string(theme) != value {
		s.logger.Warn("stored theme not recognised", zap.String("value", value), zap.String("fallback", string(theme)))
	}
	return theme, true, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := theme.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Set(ctx, domain.ThemeKey, string(theme)); err != nil {
		s.logger.Error("theme write failed", zap.String("theme", string(theme)), zap.Error(err))
		return err
	}
	s.logger.Debug("theme saved", zap.String("theme", string(theme)))
	return nil
}

func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, _, err := s.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
