package service

import (
	"context"

	"go.uber.org/zap"

	"colorant-og/models"
	"colorant-og/utils"
)

// PaletteResolver maps a share token to three concrete colors.
// Implements PaletteResolverInterface
type PaletteResolver struct {
	catalog CatalogServiceInterface
	logger  *zap.Logger
}

// NewPaletteResolver creates a new PaletteResolver
func NewPaletteResolver(catalog CatalogServiceInterface, logger *zap.Logger) *PaletteResolver {
	return &PaletteResolver{
		catalog: catalog,
		logger:  logger,
	}
}

// Ensure PaletteResolver implements PaletteResolverInterface
var _ PaletteResolverInterface = (*PaletteResolver)(nil)

// Resolve returns the palette for token. Each slot is resolved on its own and
// keeps its fallback color when its source is missing, so a stale or partly
// broken token still yields a best-effort palette. A nil token returns the
// fallback palette without touching the catalog.
func (r *PaletteResolver) Resolve(ctx context.Context, token *models.ShareToken) models.ResolvedPalette {
	colors := models.FallbackPalette
	if token == nil {
		return colors
	}

	dyes := r.catalog.GetCatalog(ctx)
	r.logger.Debug("Resolving palette",
		zap.Int("dyes", len(dyes)),
		zap.Stringer("primaryKind", token.Kind),
		zap.String("primary", token.PrimaryID),
		zap.Strings("secondary", token.Secondary[:]),
		zap.String("pattern", models.PatternLabel(token.Pattern)))

	switch token.Kind {
	case models.PrimaryCatalog:
		if dye, ok := dyes.Lookup(token.PrimaryID); ok {
			colors[models.SlotPrimary] = hexOf(dye.RGB)
		}
	case models.PrimaryCustom:
		if token.IsCustomPrimary() {
			colors[models.SlotPrimary] = hexOf(token.Custom.RGB)
		}
	}

	for i, id := range token.Secondary {
		if dye, ok := dyes.Lookup(id); ok {
			colors[models.SlotSecondary1+i] = hexOf(dye.RGB)
		}
	}

	return colors
}

func hexOf(rgb models.RGB) string {
	return utils.RGBToHex(rgb.R, rgb.G, rgb.B)
}
