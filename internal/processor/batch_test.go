package processor

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/sunward-optics/frametag/internal/classifier"
	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/reconcile"
	"github.com/sunward-optics/frametag/internal/rules"
	"github.com/sunward-optics/frametag/internal/taxonomy"
)

func newTestProcessor(concurrency int) *BatchProcessor {
	c := classifier.New(logger.Nop(), rules.Default(), nil, classifier.Config{Version: "test"})
	r := reconcile.New(taxonomy.NewRegistry())
	return NewBatchProcessor(c, r, concurrency, nil, logger.Nop())
}

func testCatalog(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			ID:          fmt.Sprintf("p-%d", i),
			Title:       fmt.Sprintf("Frame %d", i),
			Description: "round wire frame with polarized lenses",
		}
		if i%3 == 0 {
			products[i].ExistingTags = []string{"style:round"}
		}
	}
	return products
}

func TestProcess_PreservesCatalogOrder(t *testing.T) {
	bp := newTestProcessor(8)
	products := testCatalog(50)

	results := bp.Process(context.Background(), products)

	if len(results) != len(products) {
		t.Fatalf("got %d results, want %d", len(results), len(products))
	}
	for i, rp := range results {
		if rp.Product.ID != products[i].ID {
			t.Errorf("result %d has product %s, want %s", i, rp.Product.ID, products[i].ID)
		}
	}
}

func TestProcess_DeterministicAcrossConcurrency(t *testing.T) {
	products := testCatalog(30)

	serial := newTestProcessor(1).Process(context.Background(), products)
	parallel := newTestProcessor(16).Process(context.Background(), products)

	if !reflect.DeepEqual(serial, parallel) {
		t.Error("parallel results differ from serial results")
	}
}

func TestProcess_EmptyCatalog(t *testing.T) {
	bp := newTestProcessor(4)
	if results := bp.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestProcess_ReconciliationStatus(t *testing.T) {
	bp := newTestProcessor(4)
	products := testCatalog(9)

	results := bp.Process(context.Background(), products)
	for i, rp := range results {
		want := i%3 == 0
		if rp.AlreadyTagged != want {
			t.Errorf("product %d AlreadyTagged = %v, want %v", i, rp.AlreadyTagged, want)
		}
	}
}
