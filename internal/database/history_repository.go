package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/report"
)

// HistoryEntry is one audit row: what a run suggested for one product.
type HistoryEntry struct {
	ID                int       `db:"id"                 json:"id"`
	ProductID         string    `db:"product_id"         json:"product_id"`
	ProductTitle      string    `db:"product_title"      json:"product_title"`
	Status            string    `db:"status"             json:"status"`
	SuggestedTags     string    `db:"suggested_tags"     json:"suggested_tags"`
	ClassifierVersion string    `db:"classifier_version" json:"classifier_version"`
	ClassifiedAt      time.Time `db:"classified_at"      json:"classified_at"`
}

// HistoryRepository handles database operations for tagging history.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a history repository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecordRun inserts one row per reconciled product.
func (r *HistoryRepository) RecordRun(ctx context.Context, reconciled []domain.ReconciledProduct, version string) error {
	query := r.db.Rebind(`
		INSERT INTO tagging_history (product_id, product_title, status, suggested_tags, classifier_version, classified_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	now := time.Now().UTC()
	for _, rp := range reconciled {
		status := report.StatusNeedsTagging
		if rp.AlreadyTagged {
			status = report.StatusAlreadyTagged
		}
		tags := strings.Join(domain.TagStrings(rp.SuggestedTags), ", ")

		if _, err := r.db.ExecContext(ctx, query,
			rp.Product.ID, rp.Product.Title, status, tags, version, now,
		); err != nil {
			return fmt.Errorf("record history for product %s: %w", rp.Product.ID, err)
		}
	}
	return nil
}

// ListByProduct returns history rows for one product, newest first.
func (r *HistoryRepository) ListByProduct(ctx context.Context, productID string) ([]HistoryEntry, error) {
	query := r.db.Rebind(`
		SELECT id, product_id, product_title, status, suggested_tags, classifier_version, classified_at
		FROM tagging_history
		WHERE product_id = ?
		ORDER BY classified_at DESC, id DESC
	`)

	var entries []HistoryEntry
	if err := r.db.SelectContext(ctx, &entries, query, productID); err != nil {
		return nil, fmt.Errorf("list history for product %s: %w", productID, err)
	}
	return entries, nil
}

// ListRecent returns the most recent history rows across all products.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := r.db.Rebind(`
		SELECT id, product_id, product_title, status, suggested_tags, classifier_version, classified_at
		FROM tagging_history
		ORDER BY classified_at DESC, id DESC
		LIMIT ?
	`)

	var entries []HistoryEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list recent history: %w", err)
	}
	return entries, nil
}

// Count returns the total number of history rows.
func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tagging_history`); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}
