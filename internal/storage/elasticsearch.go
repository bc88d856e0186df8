// Package storage exports reconciled products to an Elasticsearch index so
// the merchandising team can browse runs in a dashboard. Entirely optional;
// the file artifacts are the primary output.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
	"github.com/sunward-optics/frametag/internal/report"
)

// ReviewDoc is the indexed document shape for one reconciled product.
type ReviewDoc struct {
	ProductID         string    `json:"product_id"`
	Title             string    `json:"title"`
	URL               string    `json:"url"`
	Status            string    `json:"status"`
	SuggestedTags     []string  `json:"suggested_tags"`
	ExistingTags      []string  `json:"existing_tags"`
	ClassifierVersion string    `json:"classifier_version"`
	IndexedAt         time.Time `json:"indexed_at"`
}

// Exporter indexes reconciled products.
type Exporter struct {
	client  *es.Client
	index   string
	version string
	limiter *processor.RateLimiter
	logger  logger.Logger
}

// NewExporter creates an exporter writing to the given index.
func NewExporter(client *es.Client, index, version string, limiter *processor.RateLimiter, log logger.Logger) *Exporter {
	return &Exporter{
		client:  client,
		index:   index,
		version: version,
		limiter: limiter,
		logger:  log,
	}
}

// Export indexes every reconciled product, one document per product keyed by
// product ID so re-runs overwrite rather than accumulate.
func (e *Exporter) Export(ctx context.Context, reconciled []domain.ReconciledProduct) error {
	if err := e.EnsureIndex(ctx); err != nil {
		return err
	}

	for _, rp := range reconciled {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}
		}
		if err := e.indexOne(ctx, rp); err != nil {
			return err
		}
	}

	e.logger.Info("export complete",
		logger.String("index", e.index),
		logger.Int("documents", len(reconciled)),
	)
	return nil
}

func (e *Exporter) indexOne(ctx context.Context, rp domain.ReconciledProduct) error {
	status := report.StatusNeedsTagging
	if rp.AlreadyTagged {
		status = report.StatusAlreadyTagged
	}

	doc := ReviewDoc{
		ProductID:         rp.Product.ID,
		Title:             rp.Product.Title,
		URL:               rp.Product.URL,
		Status:            status,
		SuggestedTags:     domain.TagStrings(rp.SuggestedTags),
		ExistingTags:      rp.Product.ExistingTags,
		ClassifierVersion: e.version,
		IndexedAt:         time.Now().UTC(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", rp.Product.ID, err)
	}

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(rp.Product.ID),
	)
	if err != nil {
		return fmt.Errorf("index document %s: %w", rp.Product.ID, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return fmt.Errorf("index document %s: %s", rp.Product.ID, res.String())
	}
	return nil
}
