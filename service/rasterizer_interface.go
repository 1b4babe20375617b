package service

import (
	"context"

	"colorant-og/models"
)

// RasterizerInterface renders a flex layout to PNG bytes
type RasterizerInterface interface {
	Render(ctx context.Context, layout models.Layout) ([]byte, error)
}
