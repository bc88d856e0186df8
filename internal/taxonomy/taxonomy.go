// Package taxonomy holds the fixed category vocabulary used to namespace
// frame classification tags.
package taxonomy

import "github.com/sunward-optics/frametag/internal/domain"

// Registry answers whether a raw tag string belongs to the taxonomy.
//
// style and material carry closed value sets; vibe, lens and face_shape are
// open-valued because the catalog grows those informally over time
// (lens:custom, vibe:corporate and friends show up without ever being added
// to a rule). Category membership is the authoritative check for the open
// categories.
type Registry struct {
	closed map[domain.Category]map[string]struct{}
}

// NewRegistry builds the default registry.
func NewRegistry() *Registry {
	return &Registry{
		closed: map[domain.Category]map[string]struct{}{
			domain.CategoryStyle: valueSet(
				"aviator", "cat_eye", "round", "rectangle", "square", "wayfarer",
			),
			domain.CategoryMaterial: valueSet(
				"wire", "acetate",
			),
		},
	}
}

// IsTaxonomyTag reports whether s parses as "category:value" with a known
// category and, for closed categories, a permitted value. Malformed strings
// simply return false; there are no error conditions.
func (r *Registry) IsTaxonomyTag(s string) bool {
	tag, ok := domain.ParseTag(s)
	if !ok {
		return false
	}
	allowed, isClosed := r.closed[tag.Category]
	if !isClosed {
		return true
	}
	_, ok = allowed[tag.Value]
	return ok
}

func valueSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
