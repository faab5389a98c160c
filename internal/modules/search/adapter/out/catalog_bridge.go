package out

import (
	"context"

	catalog "refdeck/internal/modules/catalog/domain"
	catalogin "refdeck/internal/modules/catalog/port/in"
	searchout "refdeck/internal/modules/search/port/out"
)

type CatalogBridge struct {
	catalog catalogin.Usecase
}

func NewCatalogBridge(catalog catalogin.Usecase) searchout.Catalog {
	return &CatalogBridge{catalog: catalog}
}

func (b *CatalogBridge) Content(ctx context.Context) (catalog.Snapshot, error) {
	return b.catalog.Load(ctx)
}
