package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sunward-optics/frametag/internal/taxonomy"
)

// WriteMarkdown renders the narrative reference document: a needs-tagging
// section with one suggested tag per line inside a literal block (ready to
// copy-paste into the platform's tag field), followed by an already-tagged
// section listing each product's existing taxonomy tags inline.
func WriteMarkdown(w io.Writer, p Partition, registry *taxonomy.Registry) error {
	var b strings.Builder

	b.WriteString("# Frame Tagging Reference\n\n")

	fmt.Fprintf(&b, "## Needs Tagging (%d)\n\n", len(p.NeedsTagging))
	for i, rp := range p.NeedsTagging {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, rp.Product.Title)
		if rp.Product.URL != "" {
			fmt.Fprintf(&b, "[View product](%s)\n\n", rp.Product.URL)
		}
		b.WriteString("```\n")
		for _, tag := range rp.SuggestedTags {
			b.WriteString(tag.String())
			b.WriteByte('\n')
		}
		b.WriteString("```\n\n")
	}

	fmt.Fprintf(&b, "## Already Tagged (%d)\n\n", len(p.AlreadyTagged))
	for _, rp := range p.AlreadyTagged {
		existing := taxonomyTags(rp.Product.ExistingTags, registry)
		fmt.Fprintf(&b, "- **%s** - %s\n", rp.Product.Title, strings.Join(existing, ", "))
	}
	if len(p.AlreadyTagged) > 0 {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// taxonomyTags filters an existing-tag list down to valid taxonomy tags,
// preserving order. Free-form tags are not the reviewer's concern here.
func taxonomyTags(existing []string, registry *taxonomy.Registry) []string {
	out := make([]string, 0, len(existing))
	for _, raw := range existing {
		if registry.IsTaxonomyTag(raw) {
			out = append(out, raw)
		}
	}
	return out
}
