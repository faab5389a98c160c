package out

import (
	"context"

	browseout "refdeck/internal/modules/browse/port/out"
	catalog "refdeck/internal/modules/catalog/domain"
	catalogin "refdeck/internal/modules/catalog/port/in"
)

type CatalogBridge struct {
	catalog catalogin.Usecase
}

func NewCatalogBridge(catalog catalogin.Usecase) browseout.Catalog {
	return &CatalogBridge{catalog: catalog}
}

// Content loads on first use and returns the current snapshot afterwards,
// including one installed by a reload.
func (b *CatalogBridge) Content(ctx context.Context) (catalog.Snapshot, error) {
	if _, err := b.catalog.Load(ctx); err != nil {
		return catalog.Snapshot{}, err
	}
	return b.catalog.Snapshot(ctx)
}
