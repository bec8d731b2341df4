package cmd

import (
	"context"
	"fmt"
	"time"

	"relic-manager/core/loader"
	"relic-manager/core/logger"
	"relic-manager/core/middleware/auth"
	"relic-manager/core/middleware/rayid"
	"relic-manager/core/reconcile"
	"relic-manager/core/storage"
	"relic-manager/feature/icons"
	"relic-manager/feature/lock"
	"relic-manager/feature/relic"
	"relic-manager/feature/relic/classify"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "relic-manager/docs/swagger"
)

// @title Relic Manager API
// @version 1.0
// @description API for parsing relic scans and managing relic locks.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the relic manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	classifier, err := classify.NewClassifier(cfg.Relic.Classify, logg)
	if err != nil {
		return err
	}

	// The lock store is optional: without it scans run as a cold start.
	var (
		locks     relic.LockSource
		lockStore reconcile.Store
		lockFeat  *lock.Feature
	)
	if feat, err := openLocks(cfg.Database, logg); err != nil {
		logg.Warn("Lock store unavailable", zap.Error(err))
		lockFeat = lock.NewFeature(nil, logg)
	} else {
		lockFeat = feat
		locks = feat.Service()
		lockStore = lock.NewReconcileStore(feat.Service())
	}

	// Icon storage is optional as well.
	var store storage.Client
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable", zap.Error(err))
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			logg.Warn("Icon bucket unavailable", zap.Error(err))
		} else {
			store = client
		}
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(relic.NewFeature(classifier, locks, lockStore, logg))
	mgr.Register(lockFeat)
	mgr.Register(icons.NewFeature(store, cfg.Storage.Bucket, cfg.Icons, logg))

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("address", cfg.Server.Address()),
			zap.String("fuzzy_mode", string(classifier.Mode())),
			zap.Bool("auth", cfg.Server.AuthEnabled()),
		)
		errCh <- app.Listen(cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-cmd.Context().Done():
	}

	logg.Info("Shutting down server...")
	return app.ShutdownWithTimeout(10 * time.Second)
}
