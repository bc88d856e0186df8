package database

import (
	"context"
	"testing"

	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/report"
)

func openTestDB(t *testing.T) *HistoryRepository {
	t.Helper()
	db, err := Open(context.Background(), "sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepository(db)
}

func TestHistoryRepository_RecordAndList(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	reconciled := []domain.ReconciledProduct{
		{
			Product: domain.Product{ID: "p-1", Title: "Frame A"},
			SuggestedTags: []domain.Tag{
				{Category: domain.CategoryStyle, Value: "round"},
				{Category: domain.CategoryVibe, Value: "retro"},
			},
		},
		{
			Product:       domain.Product{ID: "p-2", Title: "Frame B"},
			SuggestedTags: []domain.Tag{{Category: domain.CategoryStyle, Value: "aviator"}},
			AlreadyTagged: true,
		},
	}

	if err := repo.RecordRun(ctx, reconciled, "1.0.0"); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}

	entries, err := repo.ListByProduct(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListByProduct: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Status != report.StatusNeedsTagging {
		t.Errorf("status = %q, want %q", entries[0].Status, report.StatusNeedsTagging)
	}
	if entries[0].SuggestedTags != "style:round, vibe:retro" {
		t.Errorf("suggested tags = %q", entries[0].SuggestedTags)
	}

	recent, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d recent entries, want 2", len(recent))
	}
}

func TestHistoryRepository_EmptyRun(t *testing.T) {
	repo := openTestDB(t)

	if err := repo.RecordRun(context.Background(), nil, "1.0.0"); err != nil {
		t.Fatalf("RecordRun with empty slice: %v", err)
	}
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}
