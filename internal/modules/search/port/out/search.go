package out

import (
	"context"

	catalog "refdeck/internal/modules/catalog/domain"
)

// Catalog hands out the loaded content, loading it on first use.
type Catalog interface {
	Content(ctx context.Context) (catalog.Snapshot, error)
}
