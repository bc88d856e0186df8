package classifier

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Gold AVIATOR", "gold aviator"},
		{"strips markup", "<p>Acetate <strong>frame</strong></p>", "acetate frame"},
		{"collapses punctuation", "cat-eye / cat.eye", "cat eye cat eye"},
		{"folds diacritics", "café élégant", "cafe elegant"},
		{"keeps digits", "1990s classic", "1990s classic"},
		{"empty", "", ""},
		{"only markup", "<br/>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripHTMLFallback(t *testing.T) {
	// Plain text without markup passes through untouched.
	if got := stripHTML("plain title"); got != "plain title" {
		t.Errorf("stripHTML altered plain text: %q", got)
	}
}
