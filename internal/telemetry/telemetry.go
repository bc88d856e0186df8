// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the tagging service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sunward-optics/frametag/internal/domain"
)

const serviceName = "frametag"

// Metrics holds all tagging Prometheus metrics.
type Metrics struct {
	ProductsTagged         *prometheus.CounterVec // by status (needs_tagging / already_tagged)
	TagsSuggested          *prometheus.CounterVec // by category
	ClassificationDuration prometheus.Histogram
	BatchDuration          prometheus.Histogram
	BatchSize              prometheus.Histogram
}

// Provider wraps the tracer, the metrics and their registry.
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider initializes telemetry with a dedicated Prometheus registry so
// multiple providers (one per test, for instance) never collide.
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	metrics := &Metrics{
		ProductsTagged: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frametag_products_tagged_total",
			Help: "Products processed, by reconciliation status",
		}, []string{"status"}),
		TagsSuggested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frametag_tags_suggested_total",
			Help: "Suggested tags emitted, by taxonomy category",
		}, []string{"category"}),
		ClassificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frametag_classification_duration_seconds",
			Help:    "Per-product classification duration",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frametag_batch_duration_seconds",
			Help:    "Whole-catalog batch duration",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frametag_batch_size",
			Help:    "Number of products per batch run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  metrics,
		registry: registry,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// RecordClassification records one classification outcome.
func (p *Provider) RecordClassification(ctx context.Context, duration time.Duration, tags []domain.Tag) {
	p.Metrics.ClassificationDuration.Observe(duration.Seconds())
	for _, tag := range tags {
		p.Metrics.TagsSuggested.WithLabelValues(string(tag.Category)).Inc()
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(attribute.Int("frametag.tags", len(tags)))
	}
}

// RecordBatch records the shape of one batch run.
func (p *Provider) RecordBatch(duration time.Duration, size int) {
	p.Metrics.BatchDuration.Observe(duration.Seconds())
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordStatus counts a reconciled product by its tagging status.
func (p *Provider) RecordStatus(alreadyTagged bool) {
	status := "needs_tagging"
	if alreadyTagged {
		status = "already_tagged"
	}
	p.Metrics.ProductsTagged.WithLabelValues(status).Inc()
}
