package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"colorant-og/models"
	"colorant-og/service"
)

// OGController handles HTTP requests for palette preview images
type OGController struct {
	decoder  service.TokenDecoderInterface
	resolver service.PaletteResolverInterface
	composer service.ImageComposerInterface
	logger   *zap.Logger
}

// NewOGController creates a new OGController
func NewOGController(
	decoder service.TokenDecoderInterface,
	resolver service.PaletteResolverInterface,
	composer service.ImageComposerInterface,
	logger *zap.Logger,
) *OGController {
	return &OGController{
		decoder:  decoder,
		resolver: resolver,
		composer: composer,
		logger:   logger,
	}
}

// GetImageByQuery handles GET /og?palette=...|?custom-palette=...
// Without a token the fallback palette is rendered.
func (c *OGController) GetImageByQuery(w http.ResponseWriter, r *http.Request) {
	param, token := queryToken(r)
	c.logger.Debug("Raw params", zap.String("param", param), zap.String("token", token))
	c.serveImage(w, r, token)
}

// GetImageByPath handles GET /og/:token
func (c *OGController) GetImageByPath(w http.ResponseWriter, r *http.Request) {
	c.serveImage(w, r, pathToken(r))
}

func (c *OGController) serveImage(w http.ResponseWriter, r *http.Request, token string) {
	cacheControl := cacheControlFor(r, CacheControlImage)

	data, err := c.render(r.Context(), token)
	if err != nil {
		c.logger.Error("❌ Error generating OGP image", zap.Error(err))
		// failures still answer 200 with the error card
		data = c.composer.ErrorImage()
		cacheControl = CacheControlNoCache
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		c.logger.Warn("Failed to write image response", zap.Error(err))
	}
}

// render decodes, resolves and composes; panics from the rasterizer are
// turned into errors so the caller can fall back to the error image
func (c *OGController) render(ctx context.Context, raw string) (data []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during composition: %v", p)
		}
	}()

	var token *models.ShareToken
	if raw != "" {
		token = c.decoder.DecodeShareToken(raw)
	}
	palette := c.resolver.Resolve(ctx, token)
	return c.composer.Compose(ctx, palette)
}
