package relic

import (
	"relic-manager/core/reconcile"
	"relic-manager/feature/relic/classify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Relic feature.
func NewFeature(classifier *classify.Classifier, locks LockSource, store reconcile.Store, logger *zap.Logger) *Feature {
	svc := NewService(NewAssembler(classifier, logger), locks, store, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "relics"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the underlying relic service.
func (f *Feature) Service() *Service {
	return f.service
}
