package repository

import (
	"sync/atomic"

	"colorant-og/models"
)

// CatalogRepository keeps the memoized dye catalog for the process lifetime.
// Writes replace the whole index atomically; concurrent writers simply race
// and the last one wins, which is fine because every write is derived from
// the same remote document.
type CatalogRepository struct {
	index atomic.Pointer[models.CatalogIndex]
}

// NewCatalogRepository creates an empty CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// Get returns the stored index, or false when nothing usable is stored
func (r *CatalogRepository) Get() (models.CatalogIndex, bool) {
	p := r.index.Load()
	if p == nil || len(*p) == 0 {
		return nil, false
	}
	return *p, true
}

// Store saves index. Empty indexes are ignored so that a later call retries
// the fetch.
func (r *CatalogRepository) Store(index models.CatalogIndex) {
	if len(index) == 0 {
		return
	}
	r.index.Store(&index)
}

// Reset drops the stored index
func (r *CatalogRepository) Reset() {
	r.index.Store(nil)
}
