package domain

// Product is a read-only snapshot of one catalog item as exported from the
// commerce platform. The tagging pipeline never mutates it; ID, Handle and
// URL are opaque and passed through unchanged.
type Product struct {
	ID           string   `json:"id"`
	Handle       string   `json:"handle,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"` // may contain HTML markup
	URL          string   `json:"url"`
	ExistingTags []string `json:"existing_tags"` // free-form, not necessarily namespaced
}
