package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"colorant-og/models"
)

// ImageComposer renders a resolved palette with the configured geometry.
// Implements ImageComposerInterface
type ImageComposer struct {
	geometry   models.Geometry
	rasterizer RasterizerInterface
	logger     *zap.Logger

	errorOnce  sync.Once
	errorImage []byte
}

// NewImageComposer creates a new ImageComposer
func NewImageComposer(geometry models.Geometry, rasterizer RasterizerInterface, logger *zap.Logger) *ImageComposer {
	return &ImageComposer{
		geometry:   geometry,
		rasterizer: rasterizer,
		logger:     logger,
	}
}

// Ensure ImageComposer implements ImageComposerInterface
var _ ImageComposerInterface = (*ImageComposer)(nil)

// Geometry returns the active geometry
func (c *ImageComposer) Geometry() models.Geometry {
	return c.geometry
}

// Compose lays out palette and hands it to the rasterizer
func (c *ImageComposer) Compose(ctx context.Context, palette models.ResolvedPalette) ([]byte, error) {
	layout := GeometryLayout(c.geometry, palette)
	return c.rasterizer.Render(ctx, layout)
}

// ErrorImage returns the static error card for the active geometry. It is
// drawn once with the in-process rasterizer; nil means even that failed.
func (c *ImageComposer) ErrorImage() []byte {
	c.errorOnce.Do(func() {
		width, height := CanvasSize(c.geometry)
		img, err := NewImagingRasterizer().RenderErrorImage(width, height)
		if err != nil {
			c.logger.Error("Failed to render error image", zap.Error(err))
			return
		}
		c.errorImage = img
	})
	return c.errorImage
}
