// Package rules defines the signal vocabulary used to infer taxonomy tags
// from product copy, and the engine that applies it.
package rules

import "github.com/sunward-optics/frametag/internal/domain"

// Rule maps a set of text signals to one taxonomy tag. A rule fires when any
// keyword occurs as a substring of the normalized text, or when the optional
// Pattern matches it. Rules are independent: several rules may fire for the
// same product, including several within one category.
type Rule struct {
	Category domain.Category
	Value    string
	Keywords []string
	Pattern  string // optional regex, matched against normalized text
}

// Tag returns the tag this rule produces when it fires.
func (r Rule) Tag() domain.Tag {
	return domain.Tag{Category: r.Category, Value: r.Value}
}

// Table is an ordered rule set. Declaration order determines emitted tag
// order; it never affects which rules fire.
type Table []Rule

// Default returns the production rule table. Keyword lists are substring
// signals over normalized text (lowercased, markup stripped, punctuation
// collapsed to spaces), so "1990s" carries the "90s" retro signal and
// "cat-eye" matches the "cat eye" variant.
func Default() Table {
	return Table{
		{Category: domain.CategoryStyle, Value: "aviator", Keywords: []string{"aviator", "teardrop", "pilot"}},
		{Category: domain.CategoryStyle, Value: "cat_eye", Keywords: []string{"cat eye", "cateye", "upswept"}},
		{Category: domain.CategoryStyle, Value: "round", Keywords: []string{"round", "circle", "circular"}},
		{Category: domain.CategoryStyle, Value: "rectangle", Keywords: []string{"rectangle", "rectangular"}},
		{Category: domain.CategoryStyle, Value: "square", Keywords: []string{"square", "boxy"}},
		{Category: domain.CategoryStyle, Value: "wayfarer", Keywords: []string{"wayfarer", "trapezoid"}},

		{Category: domain.CategoryMaterial, Value: "wire", Keywords: []string{"wire", "metal", "titanium", "gold", "silver", "steel"}},
		{Category: domain.CategoryMaterial, Value: "acetate", Keywords: []string{"acetate", "plastic", "chunky", "thick"}},

		{Category: domain.CategoryVibe, Value: "retro", Keywords: []string{"vintage", "retro", "70s", "80s", "90s"}},
		{Category: domain.CategoryVibe, Value: "modern", Keywords: []string{"modern", "contemporary", "minimal"}},
		{Category: domain.CategoryVibe, Value: "luxury", Keywords: []string{"luxury", "premium", "designer"}},
		{Category: domain.CategoryVibe, Value: "edgy", Keywords: []string{"edgy", "bold", "statement"}},

		{Category: domain.CategoryLens, Value: "polarized", Keywords: []string{"polarized"}},
		{Category: domain.CategoryLens, Value: "rx", Keywords: []string{"prescription", "rx"}},
		{Category: domain.CategoryLens, Value: "blue_light", Keywords: []string{"blue light", "bluelight", "computer", "screen"}},
		{Category: domain.CategoryLens, Value: "tinted", Keywords: []string{"tint", "gradient", "colored"}},
	}
}
