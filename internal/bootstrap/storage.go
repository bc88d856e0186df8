package bootstrap

import (
	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/sunward-optics/frametag/internal/config"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
	"github.com/sunward-optics/frametag/internal/storage"
)

// SetupExporter creates the optional Elasticsearch review exporter. Returns
// nil when the export is disabled or the client cannot be built; runs still
// produce the file artifacts.
func SetupExporter(cfg *config.Config, log logger.Logger) *storage.Exporter {
	if !cfg.Elasticsearch.Enabled {
		return nil
	}

	client, err := es.NewClient(es.Config{Addresses: []string{cfg.Elasticsearch.URL}})
	if err != nil {
		log.Warn("elasticsearch client unavailable, skipping review export", logger.Error(err))
		return nil
	}

	limiter := processor.NewRateLimiter(cfg.Service.RateLimitRPS, cfg.Service.RateLimitBurst)
	return storage.NewExporter(client, cfg.Elasticsearch.Index, cfg.Service.Version, limiter, log)
}
