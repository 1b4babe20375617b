package service

import (
	"context"

	"colorant-og/models"
)

// CatalogServiceInterface defines the contract for the memoized dye catalog
type CatalogServiceInterface interface {
	GetCatalog(ctx context.Context) models.CatalogIndex
	Reset()
}
