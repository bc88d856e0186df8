// Package processor runs the classify/reconcile pipeline over a catalog
// snapshot using a worker pool. Classification is independent per product,
// so parallelism is purely a throughput optimization: results land at their
// input index and output order is identical run to run.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/sunward-optics/frametag/internal/classifier"
	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/reconcile"
	"github.com/sunward-optics/frametag/internal/telemetry"
)

const defaultConcurrency = 10

// BatchProcessor classifies and reconciles products in parallel.
type BatchProcessor struct {
	classifier  *classifier.Classifier
	reconciler  *reconcile.Reconciler
	concurrency int
	telemetry   *telemetry.Provider
	logger      logger.Logger
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(
	c *classifier.Classifier,
	r *reconcile.Reconciler,
	concurrency int,
	tp *telemetry.Provider,
	log logger.Logger,
) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		classifier:  c,
		reconciler:  r,
		concurrency: concurrency,
		telemetry:   tp,
		logger:      log,
	}
}

// Process tags every product in the snapshot and returns reconciled results
// in catalog order. Products are never mutated; a second call with the same
// snapshot returns identical results.
func (b *BatchProcessor) Process(ctx context.Context, products []domain.Product) []domain.ReconciledProduct {
	if len(products) == 0 {
		return []domain.ReconciledProduct{}
	}

	start := time.Now()
	b.logger.Info("starting batch run",
		logger.Int("products", len(products)),
		logger.Int("concurrency", b.concurrency),
	)

	results := make([]domain.ReconciledProduct, len(products))
	jobs := make(chan int, len(products))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				p := &products[i]
				result := b.classifier.Classify(ctx, p)
				results[i] = b.reconciler.Reconcile(p, result.Tags)
			}
		}()
	}

	for i := range products {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	needsTagging := 0
	for _, rp := range results {
		if !rp.AlreadyTagged {
			needsTagging++
		}
		if b.telemetry != nil {
			b.telemetry.RecordStatus(rp.AlreadyTagged)
		}
	}

	duration := time.Since(start)
	if b.telemetry != nil {
		b.telemetry.RecordBatch(duration, len(products))
	}
	b.logger.Info("batch run complete",
		logger.Int("products", len(products)),
		logger.Int("needs_tagging", needsTagging),
		logger.Int("already_tagged", len(products)-needsTagging),
		logger.Duration("took", duration),
	)

	return results
}
