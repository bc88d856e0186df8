// Package classifier derives taxonomy tags from free-text product metadata.
package classifier

import (
	"context"
	"time"

	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/rules"
	"github.com/sunward-optics/frametag/internal/telemetry"
)

// fallbackFaceShapes is injected when no explicit face-shape signal is found.
// Most frame shapes suit an oval, heart or square face, so the absence of a
// signal means "broadly compatible", not "unknown".
var fallbackFaceShapes = []string{"oval", "heart", "square"}

// Config holds classifier settings.
type Config struct {
	Version string
}

// Classifier applies a rule table to product copy and produces the final
// ordered, de-duplicated tag list. It is pure: no side effects beyond
// logging and metrics, and it never fails; signal-free text simply yields
// the face-shape fallback.
type Classifier struct {
	engine    *rules.Engine
	logger    logger.Logger
	telemetry *telemetry.Provider
	version   string
}

// New creates a classifier over the given rule table. The table is an
// explicit immutable input so tests can substitute alternate rule sets.
func New(log logger.Logger, table rules.Table, tp *telemetry.Provider, cfg Config) *Classifier {
	return &Classifier{
		engine:    rules.NewEngine(table),
		logger:    log,
		telemetry: tp,
		version:   cfg.Version,
	}
}

// Classify derives the suggested tag set for one product. The product is
// never mutated. Two calls with the same input return identical tag lists.
func (c *Classifier) Classify(ctx context.Context, p *domain.Product) *domain.ClassificationResult {
	start := time.Now()

	text := normalizeText(p.Title + " " + p.Description)
	tags := c.engine.Match(text)

	if !hasFaceShape(tags) {
		for _, shape := range fallbackFaceShapes {
			tags = append(tags, domain.Tag{Category: domain.CategoryFaceShape, Value: shape})
		}
	}

	result := &domain.ClassificationResult{
		ProductID:         p.ID,
		Tags:              tags,
		ClassifierVersion: c.version,
		ClassifiedAt:      time.Now(),
		ProcessingTime:    time.Since(start),
	}

	if c.telemetry != nil {
		c.telemetry.RecordClassification(ctx, result.ProcessingTime, tags)
	}

	c.logger.Debug("product classified",
		logger.String("product_id", p.ID),
		logger.Int("tags", len(tags)),
		logger.Duration("took", result.ProcessingTime),
	)

	return result
}

// Rules returns the rule table in use.
func (c *Classifier) Rules() rules.Table {
	return c.engine.Table()
}

func hasFaceShape(tags []domain.Tag) bool {
	for _, t := range tags {
		if t.Category == domain.CategoryFaceShape {
			return true
		}
	}
	return false
}
