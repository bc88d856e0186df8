// Package reconcile merges classifier output with a product's pre-existing
// tags to decide whether it still needs manual tagging.
package reconcile

import (
	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/taxonomy"
)

// Reconciler checks existing tags against the taxonomy.
type Reconciler struct {
	registry *taxonomy.Registry
}

// New creates a reconciler over the given registry.
func New(registry *taxonomy.Registry) *Reconciler {
	return &Reconciler{registry: registry}
}

// Reconcile pairs a product with its suggested tags. AlreadyTagged is true
// iff at least one existing tag parses as a taxonomy tag, regardless of
// category. Suggested tags pass through unchanged rather than being merged
// into the existing list, so a reviewer can diff the two fields and
// copy-paste. The product is never mutated.
func (r *Reconciler) Reconcile(p *domain.Product, suggested []domain.Tag) domain.ReconciledProduct {
	alreadyTagged := false
	for _, raw := range p.ExistingTags {
		if r.registry.IsTaxonomyTag(raw) {
			alreadyTagged = true
			break
		}
	}

	return domain.ReconciledProduct{
		Product:       *p,
		SuggestedTags: suggested,
		AlreadyTagged: alreadyTagged,
	}
}
