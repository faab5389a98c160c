package theme_test

import (
	"testing"

	pref "refdeck/internal/modules/preference/domain"
	"refdeck/internal/ui/theme"
)

func TestForPicksFlavour(t *testing.T) {
	t.Parallel()

	dark := theme.For(pref.ThemeDark)
	if dark.Palette != theme.Mocha || dark.Glamour != "dark" {
		t.Fatalf("dark theme should use mocha, got %+v", dark.Palette)
	}
	light := theme.For(pref.ThemeLight)
	if light.Palette != theme.Latte || light.Glamour != "light" {
		t.Fatalf("light theme should use latte, got %+v", light.Palette)
	}
	if got := theme.For(pref.Theme("sepia")).Glamour; got != "light" {
		t.Fatalf("unknown theme should fall back to light, got %q", got)
	}
}
