package domain

import "strings"

// Category identifies one axis of the frame taxonomy.
type Category string

// The five taxonomy categories. The set is closed; new axes require a code
// change, not a data change.
const (
	CategoryStyle     Category = "style"
	CategoryMaterial  Category = "material"
	CategoryVibe      Category = "vibe"
	CategoryLens      Category = "lens"
	CategoryFaceShape Category = "face_shape"
)

// Categories returns all taxonomy categories in canonical order.
func Categories() []Category {
	return []Category{
		CategoryStyle,
		CategoryMaterial,
		CategoryVibe,
		CategoryLens,
		CategoryFaceShape,
	}
}

// Valid reports whether c is one of the defined taxonomy categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStyle, CategoryMaterial, CategoryVibe, CategoryLens, CategoryFaceShape:
		return true
	}
	return false
}

// Tag is one classification fact about a product, serialized as
// "category:value" (e.g. "material:acetate"). Tags are value types;
// identical pairs compare equal.
type Tag struct {
	Category Category `json:"category"`
	Value    string   `json:"value"`
}

// String renders the wire format: lowercase ASCII, no internal whitespace.
func (t Tag) String() string {
	return string(t.Category) + ":" + t.Value
}

// ParseTag parses "category:value" into a Tag. It reports false for anything
// that does not split into a defined category and a non-empty value.
// Value membership is intentionally not checked here; the taxonomy registry
// owns that decision.
func ParseTag(s string) (Tag, bool) {
	category, value, found := strings.Cut(s, ":")
	if !found || value == "" {
		return Tag{}, false
	}
	c := Category(category)
	if !c.Valid() {
		return Tag{}, false
	}
	return Tag{Category: c, Value: value}, true
}

// TagStrings renders a tag slice in wire format, preserving order.
func TagStrings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
