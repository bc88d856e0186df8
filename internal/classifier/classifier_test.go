package classifier

import (
	"context"
	"reflect"
	"testing"

	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/rules"
)

func newTestClassifier(table rules.Table) *Classifier {
	return New(logger.Nop(), table, nil, Config{Version: "test"})
}

func tagStrings(tags []domain.Tag) []string {
	return domain.TagStrings(tags)
}

func TestClassify_VintageWireFrames(t *testing.T) {
	c := newTestClassifier(rules.Default())

	product := &domain.Product{
		ID:          "p-1",
		Title:       "Steel Tide 1990s Ralph Lauren Sunglasses",
		Description: "<p>An acetate and wire combination frame. Suits an oval face.</p>",
	}

	result := c.Classify(context.Background(), product)
	got := tagStrings(result.Tags)

	for _, want := range []string{"material:wire", "material:acetate", "vibe:retro"} {
		if !containsString(got, want) {
			t.Errorf("missing %s in %v", want, got)
		}
	}
}

func TestClassify_NoSignalsYieldsFallbackOnly(t *testing.T) {
	c := newTestClassifier(rules.Default())

	product := &domain.Product{ID: "gift-card", Title: "Gift Card", Description: ""}

	result := c.Classify(context.Background(), product)
	want := []string{"face_shape:oval", "face_shape:heart", "face_shape:square"}
	if got := tagStrings(result.Tags); !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want exactly %v", got, want)
	}
}

func TestClassify_EmptyProduct(t *testing.T) {
	c := newTestClassifier(rules.Default())

	result := c.Classify(context.Background(), &domain.Product{ID: "empty"})
	want := []string{"face_shape:oval", "face_shape:heart", "face_shape:square"}
	if got := tagStrings(result.Tags); !reflect.DeepEqual(got, want) {
		t.Errorf("empty product tags = %v, want %v", got, want)
	}
}

func TestClassify_MultiLabelShapes(t *testing.T) {
	c := newTestClassifier(rules.Default())

	product := &domain.Product{
		ID:          "p-2",
		Title:       "Dual Frame",
		Description: "round lenses set in a square frame",
	}

	got := tagStrings(c.Classify(context.Background(), product).Tags)
	if !containsString(got, "style:round") || !containsString(got, "style:square") {
		t.Errorf("expected both style:round and style:square, got %v", got)
	}
}

func TestClassify_FallbackNotAddedWhenFaceShapeMatched(t *testing.T) {
	table := append(rules.Default(), rules.Rule{
		Category: domain.CategoryFaceShape,
		Value:    "heart",
		Keywords: []string{"heart shaped face"},
	})
	c := newTestClassifier(table)

	product := &domain.Product{
		ID:          "p-3",
		Title:       "Frame",
		Description: "flattering on a heart shaped face",
	}

	got := tagStrings(c.Classify(context.Background(), product).Tags)
	if !containsString(got, "face_shape:heart") {
		t.Fatalf("matched face shape missing from %v", got)
	}
	if containsString(got, "face_shape:oval") || containsString(got, "face_shape:square") {
		t.Errorf("fallback triple injected despite face-shape match: %v", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(rules.Default())

	product := &domain.Product{
		ID:          "p-4",
		Title:       "Vintage Gold Aviator",
		Description: "polarized teardrop lenses, premium wire frame",
	}

	first := tagStrings(c.Classify(context.Background(), product).Tags)
	for i := 0; i < 20; i++ {
		got := tagStrings(c.Classify(context.Background(), product).Tags)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %v, first = %v", i, got, first)
		}
	}
}

func TestClassify_NoDuplicateTags(t *testing.T) {
	c := newTestClassifier(rules.Default())

	// Several synonyms of the same rules fire; each tag must appear once.
	product := &domain.Product{
		ID:          "p-5",
		Title:       "Vintage Retro 70s 80s Round Circle Frame",
		Description: "round circular lenses, vintage retro styling",
	}

	got := tagStrings(c.Classify(context.Background(), product).Tags)
	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
	}
	for tag, n := range seen {
		if n > 1 {
			t.Errorf("tag %s emitted %d times", tag, n)
		}
	}
}

func TestClassify_DoesNotMutateProduct(t *testing.T) {
	c := newTestClassifier(rules.Default())

	product := &domain.Product{
		ID:           "p-6",
		Title:        "Round Frame",
		Description:  "round",
		ExistingTags: []string{"style:round", "vintage"},
	}
	before := make([]string, len(product.ExistingTags))
	copy(before, product.ExistingTags)

	c.Classify(context.Background(), product)

	if !reflect.DeepEqual(product.ExistingTags, before) {
		t.Error("Classify mutated product.ExistingTags")
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
