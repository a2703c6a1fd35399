package ports

import "matchreview/internal/domain"

// CatalogSource provides the items under review
type CatalogSource interface {
	LoadCatalog() (*domain.Catalog, error)
}
