package domain

import "time"

// ClassificationResult is the output of tagging a single product. Results are
// produced fresh per invocation; nothing is persisted by the core.
type ClassificationResult struct {
	ProductID         string        `json:"product_id"`
	Tags              []Tag         `json:"tags"` // de-duplicated, rule declaration order, fallback last
	ClassifierVersion string        `json:"classifier_version"`
	ClassifiedAt      time.Time     `json:"classified_at"`
	ProcessingTime    time.Duration `json:"-"`
}

// HasCategory reports whether any tag in the result belongs to c.
func (r *ClassificationResult) HasCategory(c Category) bool {
	for _, t := range r.Tags {
		if t.Category == c {
			return true
		}
	}
	return false
}

// ReconciledProduct pairs a product with its freshly suggested tags and the
// verdict on whether it still needs manual tagging. Suggested and existing
// tags are kept as separate fields so a reviewer can diff them side by side.
type ReconciledProduct struct {
	Product       Product `json:"product"`
	SuggestedTags []Tag   `json:"suggested_tags"`
	AlreadyTagged bool    `json:"already_tagged"`
}
