package taxonomy

import "testing"

func TestIsTaxonomyTag(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		input string
		want  bool
	}{
		{"style:aviator", true},
		{"style:cat_eye", true},
		{"material:acetate", true},
		{"material:wire", true},
		{"face_shape:oval", true},
		// Open categories accept any value; the catalog grows these
		// informally and the check must not produce false negatives.
		{"lens:custom", true},
		{"vibe:corporate", true},
		{"vibe:athletic", true},
		{"face_shape:diamond", true},
		// Closed categories reject unknown values.
		{"style:hexagonal", false},
		{"material:wood", false},
		// Unknown categories and malformed strings are simply not taxonomy tags.
		{"color:black", false},
		{"gift card", false},
		{"vintage", false},
		{"", false},
		{"style:", false},
		{":aviator", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := registry.IsTaxonomyTag(tt.input); got != tt.want {
				t.Errorf("IsTaxonomyTag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
