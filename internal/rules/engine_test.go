package rules

import (
	"reflect"
	"testing"

	"github.com/sunward-optics/frametag/internal/domain"
)

func TestEngineMatch_MultiLabelWithinCategory(t *testing.T) {
	engine := NewEngine(Default())

	// Non-exclusive matching: both shapes fire on the same text.
	tags := engine.Match("frames with a round top and square bottom")

	if !containsTag(tags, domain.Tag{Category: domain.CategoryStyle, Value: "round"}) {
		t.Error("expected style:round")
	}
	if !containsTag(tags, domain.Tag{Category: domain.CategoryStyle, Value: "square"}) {
		t.Error("expected style:square")
	}
}

func TestEngineMatch_Synonyms(t *testing.T) {
	engine := NewEngine(Default())

	tests := []struct {
		text string
		want domain.Tag
	}{
		{"teardrop lenses", domain.Tag{Category: domain.CategoryStyle, Value: "aviator"}},
		{"pilot style", domain.Tag{Category: domain.CategoryStyle, Value: "aviator"}},
		{"upswept corners", domain.Tag{Category: domain.CategoryStyle, Value: "cat_eye"}},
		{"cat eye silhouette", domain.Tag{Category: domain.CategoryStyle, Value: "cat_eye"}},
		{"classic 90s look", domain.Tag{Category: domain.CategoryVibe, Value: "retro"}},
		{"titanium build", domain.Tag{Category: domain.CategoryMaterial, Value: "wire"}},
		{"blue light filtering", domain.Tag{Category: domain.CategoryLens, Value: "blue_light"}},
		{"gradient finish", domain.Tag{Category: domain.CategoryLens, Value: "tinted"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if !containsTag(engine.Match(tt.text), tt.want) {
				t.Errorf("Match(%q) missing %s", tt.text, tt.want)
			}
		})
	}
}

func TestEngineMatch_DeclarationOrder(t *testing.T) {
	engine := NewEngine(Default())

	// square appears before round in the text, but the table declares round
	// first; emitted order follows the table, not the text.
	tags := engine.Match("square yet round")
	want := []domain.Tag{
		{Category: domain.CategoryStyle, Value: "round"},
		{Category: domain.CategoryStyle, Value: "square"},
	}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Match order = %v, want %v", tags, want)
	}
}

func TestEngineMatch_SynonymsCollapseToOneTag(t *testing.T) {
	engine := NewEngine(Default())

	// Two keywords of the same rule firing must still yield a single tag.
	tags := engine.Match("vintage retro 70s")
	count := 0
	for _, tag := range tags {
		if tag == (domain.Tag{Category: domain.CategoryVibe, Value: "retro"}) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("vibe:retro emitted %d times, want 1", count)
	}
}

func TestEngineMatch_NoSignals(t *testing.T) {
	engine := NewEngine(Default())
	if tags := engine.Match("gift card"); len(tags) != 0 {
		t.Errorf("expected no tags for signal-free text, got %v", tags)
	}
}

func TestEngineMatch_PatternRule(t *testing.T) {
	table := Table{
		{Category: domain.CategoryFaceShape, Value: "oval", Pattern: `\boval face\b`},
	}
	engine := NewEngine(table)

	if tags := engine.Match("suits an oval face"); len(tags) != 1 {
		t.Fatalf("pattern rule did not fire: %v", tags)
	}
	if tags := engine.Match("ovalish"); len(tags) != 0 {
		t.Errorf("pattern rule fired on non-matching text: %v", tags)
	}
}

func TestEngineMatch_Deterministic(t *testing.T) {
	engine := NewEngine(Default())
	text := "vintage gold wire aviator with polarized gradient lenses"

	first := engine.Match(text)
	for i := 0; i < 10; i++ {
		if got := engine.Match(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d returned %v, first run returned %v", i, got, first)
		}
	}
}

func containsTag(tags []domain.Tag, want domain.Tag) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
