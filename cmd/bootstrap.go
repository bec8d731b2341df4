package cmd

import (
	"fmt"

	"relic-manager/core/config"
	"relic-manager/core/database"
	"relic-manager/core/logger"
	"relic-manager/feature/lock"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger every command starts with.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return cfg, l, nil
}

// openLocks connects to the lock database and prepares the lock table.
func openLocks(cfg database.Config, l *zap.Logger) (*lock.Feature, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	feat := lock.NewFeature(db, l)
	if err := feat.Service().AutoMigrate(); err != nil {
		return nil, err
	}
	if err := feat.Service().CheckSchema(); err != nil {
		return nil, err
	}
	l.Info("Lock store ready", zap.String("driver", cfg.Driver), zap.String("name", cfg.Name))
	return feat, nil
}
