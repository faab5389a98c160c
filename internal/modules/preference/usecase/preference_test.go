package usecase_test

import (
	"context"
	"errors"
	"testing"

	"refdeck/internal/modules/preference/service"
	"refdeck/internal/modules/preference/usecase"
	apperrors "refdeck/internal/platform/errors"
)

type memoryStore struct {
	values map[string]string
	fail   error
	writes int
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.fail != nil {
		return "", false, m.fail
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	if m.fail != nil {
		return m.fail
	}
	m.writes++
	m.values[key] = value
	return nil
}

func TestThemeDefaultsToLight(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewPreferenceService(&memoryStore{values: map[string]string{}}, nil))
	out, err := uc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if out.Theme != "light" || out.Stored {
		t.Fatalf("expected unstored light theme, got %+v", out)
	}
}

func TestToggleWritesOnce(t *testing.T) {
	t.Parallel()
	store := &memoryStore{values: map[string]string{"theme": "light"}}
	uc := usecase.NewInteractor(service.NewPreferenceService(store, nil))

	out, err := uc.ToggleTheme(context.Background())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out.Theme != "dark" || store.values["theme"] != "dark" || store.writes != 1 {
		t.Fatalf("unexpected toggle result %+v store=%v writes=%d", out, store.values, store.writes)
	}
}

func TestUnknownStoredValueFallsBack(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewPreferenceService(&memoryStore{values: map[string]string{"theme": "sepia"}}, nil))
	out, err := uc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if out.Theme != "light" {
		t.Fatalf("expected fallback to light, got %q", out.Theme)
	}
}

func TestSetThemeValidates(t *testing.T) {
	t.Parallel()
	store := &memoryStore{values: map[string]string{}}
	uc := usecase.NewInteractor(service.NewPreferenceService(store, nil))

	if _, err := uc.SetTheme(context.Background(), "neon"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	out, err := uc.SetTheme(context.Background(), " DARK ")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if out.Theme != "dark" || store.values["theme"] != "dark" {
		t.Fatalf("unexpected set result %+v", out)
	}
}

func TestStoreFailureSurfaces(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk full")
	uc := usecase.NewInteractor(service.NewPreferenceService(&memoryStore{values: map[string]string{}, fail: boom}, nil))
	if _, err := uc.ToggleTheme(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
