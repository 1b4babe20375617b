package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"colorant-og/models"
	"colorant-og/repository"
)

// CatalogService memoizes the dye catalog fetched from a CatalogSource.
// The first successful fetch is kept for the process lifetime; a failed
// fetch is reported as an empty catalog and retried on the next call.
// Implements CatalogServiceInterface
type CatalogService struct {
	source     CatalogSourceInterface
	repository repository.CatalogRepositoryInterface
	logger     *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(source CatalogSourceInterface, repo repository.CatalogRepositoryInterface, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		source:     source,
		repository: repo,
		logger:     logger,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// GetCatalog returns the dye index, fetching it on a cache miss.
// It never fails: on error the returned index is empty.
func (s *CatalogService) GetCatalog(ctx context.Context) models.CatalogIndex {
	if index, ok := s.repository.Get(); ok {
		return index
	}

	data, err := s.source.FetchCatalog(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch dyes catalog", zap.String("source", s.source.Name()), zap.Error(err))
		return models.CatalogIndex{}
	}

	index, err := ParseCatalog(data)
	if err != nil {
		s.logger.Error("Failed to parse dyes catalog", zap.String("source", s.source.Name()), zap.Error(err))
		return models.CatalogIndex{}
	}

	s.repository.Store(index)
	s.logger.Info("✓ Dyes catalog loaded", zap.String("source", s.source.Name()), zap.Int("entries", len(index)))
	return index
}

// Reset drops the memoized catalog so the next call fetches again
func (s *CatalogService) Reset() {
	s.repository.Reset()
}

type catalogDocument struct {
	Dyes []json.RawMessage `json:"dyes"`
}

type catalogRecord struct {
	ID   *string     `json:"id"`
	Name *string     `json:"name"`
	RGB  *models.RGB `json:"rgb"`
}

// ParseCatalog builds a CatalogIndex from a {"dyes": [...]} document.
// Entries that lack an id, name or rgb, or that do not decode, are skipped.
func ParseCatalog(data []byte) (models.CatalogIndex, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}

	index := make(models.CatalogIndex, len(doc.Dyes))
	for _, raw := range doc.Dyes {
		var rec catalogRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.ID == nil || *rec.ID == "" || rec.Name == nil || rec.RGB == nil {
			continue
		}
		index[*rec.ID] = models.DyeCatalogEntry{
			ID:          *rec.ID,
			DisplayName: *rec.Name,
			RGB:         *rec.RGB,
		}
	}
	return index, nil
}
