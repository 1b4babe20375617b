package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"colorant-og/app/controller"
	"colorant-og/app/router"
	"colorant-og/config"
	"colorant-og/repository"
	"colorant-og/service"
)

// Application is the wired preview service
type Application struct {
	Handler http.Handler
	Catalog service.CatalogServiceInterface

	closers []func()
}

// Close releases resources held by the application
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// NewCatalogSource picks the catalog source for cfg: a Drive file when one
// is configured, otherwise the picker's public dyes.json
func NewCatalogSource(ctx context.Context, cfg *config.Config) (service.CatalogSourceInterface, error) {
	if cfg.CatalogDriveFileID != "" {
		source, err := service.NewDriveCatalogSource(ctx, cfg.CredentialsPath, cfg.CatalogDriveFileID)
		if err != nil {
			return nil, err
		}
		return source, nil
	}
	return service.NewHTTPCatalogSource(cfg.CatalogURL, nil), nil
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	application := &Application{}

	// Initialize catalog source
	source, err := NewCatalogSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog source: %w", err)
	}
	logger.Info("Catalog source", zap.String("source", source.Name()))

	// Initialize repository
	catalogRepo := repository.NewCatalogRepository()

	// Initialize services
	catalogService := service.NewCatalogService(source, catalogRepo, logger)
	decoder := service.NewTokenDecoder(logger)
	resolver := service.NewPaletteResolver(catalogService, logger)

	var rasterizer service.RasterizerInterface
	switch cfg.Renderer {
	case config.RendererChrome:
		browser := service.NewBrowserRasterizer(cfg.ChromePath, logger)
		application.closers = append(application.closers, browser.Close)
		rasterizer = browser
	default:
		rasterizer = service.NewImagingRasterizer()
	}
	composer := service.NewImageComposer(cfg.GeometryValue(), rasterizer, logger)
	logger.Info("Image composer",
		zap.String("geometry", string(composer.Geometry())),
		zap.String("renderer", cfg.Renderer))

	// Create controllers
	controllers := &router.Controllers{
		OG:    controller.NewOGController(decoder, resolver, composer, logger),
		Share: controller.NewShareController(cfg.AppBaseURL, logger),
	}

	application.Handler = router.SetupRoutes(controllers, logger)
	application.Catalog = catalogService
	return application, nil
}
