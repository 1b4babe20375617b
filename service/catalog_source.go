package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxCatalogBytes bounds how much of the catalog document is read
const maxCatalogBytes = 8 << 20

// ErrCatalogStatus is returned when the catalog endpoint answers with a non-2xx status
var ErrCatalogStatus = errors.New("catalog endpoint returned unexpected status")

// HTTPCatalogSource fetches the dye catalog document over HTTP
type HTTPCatalogSource struct {
	url    string
	client *http.Client
}

// NewHTTPCatalogSource creates a source for url. A nil client means http.DefaultClient.
func NewHTTPCatalogSource(url string, client *http.Client) *HTTPCatalogSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCatalogSource{url: url, client: client}
}

// Ensure HTTPCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*HTTPCatalogSource)(nil)

// Name identifies the source in logs
func (s *HTTPCatalogSource) Name() string {
	return s.url
}

// FetchCatalog downloads the raw catalog document
func (s *HTTPCatalogSource) FetchCatalog(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrCatalogStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}
	return data, nil
}
