package out

import (
	"context"

	"refdeck/internal/modules/catalog/domain"
)

// DocumentSource fetches the content document once per call. Records that
// fail validation are returned as rejections rather than errors.
type DocumentSource interface {
	Fetch(ctx context.Context) (domain.Document, []domain.Rejection, error)
	Location() string
}

type CatalogueStore interface {
	Load(ctx context.Context) (domain.Catalogue, error)
}

type AboutStore interface {
	Load(ctx context.Context) (domain.AboutPage, error)
}

// ChangeNotifier signals that the content document changed on disk.
type ChangeNotifier interface {
	Changes() <-chan struct{}
	Close() error
}
