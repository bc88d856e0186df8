// Command frametag runs the tagging pipeline over a catalog snapshot and
// writes the review artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sunward-optics/frametag/internal/bootstrap"
	"github.com/sunward-optics/frametag/internal/catalog"
	"github.com/sunward-optics/frametag/internal/config"
	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/report"
	"github.com/sunward-optics/frametag/internal/taxonomy"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "frametag:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath   = flag.String("config", config.GetConfigPath("config.yml"), "path to config file")
		catalogPath  = flag.String("catalog", "", "catalog snapshot path (overrides config)")
		csvPath      = flag.String("csv", "", "record table output path (overrides config)")
		markdownPath = flag.String("markdown", "", "reference document output path (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}
	if *markdownPath != "" {
		cfg.Output.MarkdownPath = *markdownPath
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	products, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded",
		logger.String("path", cfg.Catalog.Path),
		logger.Int("products", len(products)),
	)

	comps, err := bootstrap.NewComponents(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = comps.Close() }()

	reconciled := comps.Batch.Process(ctx, products)

	if err := writeArtifacts(cfg, reconciled, log); err != nil {
		return err
	}

	if comps.History != nil {
		if err := comps.History.RecordRun(ctx, reconciled, cfg.Service.Version); err != nil {
			return err
		}
		log.Info("run history recorded", logger.Int("entries", len(reconciled)))
	}

	if exporter := bootstrap.SetupExporter(cfg, log); exporter != nil {
		exportCtx, cancel := context.WithTimeout(ctx, exportTimeout(cfg))
		defer cancel()
		if err := exporter.Export(exportCtx, reconciled); err != nil {
			return err
		}
	}

	return nil
}

func writeArtifacts(cfg *config.Config, reconciled []domain.ReconciledProduct, log logger.Logger) error {
	csvFile, err := os.Create(cfg.Output.CSVPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output.CSVPath, err)
	}
	defer func() { _ = csvFile.Close() }()
	if err := report.WriteCSV(csvFile, report.Rows(reconciled)); err != nil {
		return err
	}

	mdFile, err := os.Create(cfg.Output.MarkdownPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output.MarkdownPath, err)
	}
	defer func() { _ = mdFile.Close() }()
	if err := report.WriteMarkdown(mdFile, report.Split(reconciled), taxonomy.NewRegistry()); err != nil {
		return err
	}

	log.Info("artifacts written",
		logger.String("csv", cfg.Output.CSVPath),
		logger.String("markdown", cfg.Output.MarkdownPath),
	)
	return nil
}

func exportTimeout(cfg *config.Config) time.Duration {
	if cfg.Elasticsearch.Timeout > 0 {
		return cfg.Elasticsearch.Timeout
	}
	return 30 * time.Second
}
