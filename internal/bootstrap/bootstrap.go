// Package bootstrap wires the tagging components from configuration so the
// batch command and the HTTP server share one construction path.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sunward-optics/frametag/internal/classifier"
	"github.com/sunward-optics/frametag/internal/config"
	"github.com/sunward-optics/frametag/internal/database"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
	"github.com/sunward-optics/frametag/internal/reconcile"
	"github.com/sunward-optics/frametag/internal/rules"
	"github.com/sunward-optics/frametag/internal/taxonomy"
	"github.com/sunward-optics/frametag/internal/telemetry"
)

// Components holds the wired tagging pipeline.
type Components struct {
	Classifier *classifier.Classifier
	Reconciler *reconcile.Reconciler
	Batch      *processor.BatchProcessor
	Telemetry  *telemetry.Provider
	History    *database.HistoryRepository // nil when history is disabled
	db         *sqlx.DB
}

// LoadConfig loads configuration from the default path.
func LoadConfig() (*config.Config, error) {
	return config.Load(config.GetConfigPath("config.yml"))
}

// CreateLogger creates a logger from configuration, tagged with the service
// name.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// NewComponents wires the classifier, reconciler and batch processor, and
// opens the history database when enabled.
func NewComponents(ctx context.Context, cfg *config.Config, log logger.Logger) (*Components, error) {
	tp := telemetry.NewProvider()

	c := classifier.New(log, rules.Default(), tp, classifier.Config{Version: cfg.Service.Version})
	r := reconcile.New(taxonomy.NewRegistry())
	batch := processor.NewBatchProcessor(c, r, cfg.Service.Concurrency, tp, log)

	comps := &Components{
		Classifier: c,
		Reconciler: r,
		Batch:      batch,
		Telemetry:  tp,
	}

	if cfg.Database.Enabled {
		db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open history database: %w", err)
		}
		comps.db = db
		comps.History = database.NewHistoryRepository(db)
		log.Info("run history enabled", logger.String("driver", cfg.Database.Driver))
	}

	return comps, nil
}

// Close releases held resources.
func (c *Components) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
