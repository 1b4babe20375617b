package repository

import "colorant-og/models"

// CatalogRepositoryInterface defines the contract for the process-wide dye catalog store
type CatalogRepositoryInterface interface {
	Get() (models.CatalogIndex, bool)
	Store(index models.CatalogIndex)
	Reset()
}
