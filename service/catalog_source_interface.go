package service

import "context"

// CatalogSourceInterface defines the contract for fetching the raw dye catalog document
type CatalogSourceInterface interface {
	FetchCatalog(ctx context.Context) ([]byte, error)
	Name() string
}
