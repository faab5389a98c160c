package out

import (
	"context"

	catalog "refdeck/internal/modules/catalog/domain"
	pref "refdeck/internal/modules/preference/domain"
)

// Navigator writes the navigation fragment. The environment answers every
// write with a later fragment-changed event.
type Navigator interface {
	Navigate(fragment string)
}

type Preferences interface {
	Theme(ctx context.Context) (pref.Theme, error)
	SetTheme(ctx context.Context, theme pref.Theme) error
}

type Catalog interface {
	Content(ctx context.Context) (catalog.Snapshot, error)
}
