package service

import (
	"context"

	"colorant-og/models"
)

// ImageComposerInterface defines the contract for palette image rendering
type ImageComposerInterface interface {
	Compose(ctx context.Context, palette models.ResolvedPalette) ([]byte, error)
	ErrorImage() []byte
}
