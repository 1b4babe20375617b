package service

import (
	"context"

	"colorant-og/models"
)

// PaletteResolverInterface defines the contract for turning a share token into colors
type PaletteResolverInterface interface {
	Resolve(ctx context.Context, token *models.ShareToken) models.ResolvedPalette
}
