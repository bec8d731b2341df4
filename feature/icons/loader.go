package icons

import (
	"relic-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	catalogue *Catalogue
	handler   *Handler
}

// NewFeature creates a new Icons feature.
func NewFeature(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Feature {
	cat := NewCatalogue(client, bucket, cfg, logger)
	return &Feature{catalogue: cat, handler: NewHandler(cat)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "icons"
}

// IsEnabled reports whether object storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.catalogue.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Catalogue returns the underlying icon catalogue.
func (f *Feature) Catalogue() *Catalogue {
	return f.catalogue
}
