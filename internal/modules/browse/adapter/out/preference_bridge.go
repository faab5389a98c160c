package out

import (
	"context"

	browseout "refdeck/internal/modules/browse/port/out"
	pref "refdeck/internal/modules/preference/domain"
	prefin "refdeck/internal/modules/preference/port/in"
)

type PreferenceBridge struct {
	prefs prefin.Usecase
}

func NewPreferenceBridge(prefs prefin.Usecase) browseout.Preferences {
	return &PreferenceBridge{prefs: prefs}
}

func (b *PreferenceBridge) Theme(ctx context.Context) (pref.Theme, error) {
	out, err := b.prefs.Theme(ctx)
	if err != nil {
		return pref.DefaultTheme, err
	}
	return pref.ParseTheme(out.Theme), nil
}

func (b *PreferenceBridge) SetTheme(ctx context.Context, theme pref.Theme) error {
	_, err := b.prefs.SetTheme(ctx, string(theme))
	return err
}
