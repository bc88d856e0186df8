// Package report renders reconciled products into the two review artifacts:
// a CSV-style record table for machine import and a markdown reference
// document for humans. The emitter is a pure formatter: it imposes no tag
// de-duplication or reordering beyond what the classifier already produced.
package report

import (
	"strings"

	"github.com/sunward-optics/frametag/internal/domain"
)

// Row statuses.
const (
	StatusNeedsTagging  = "NEEDS TAGGING"
	StatusAlreadyTagged = "ALREADY TAGGED"
)

// tagDelimiter joins suggested tags inside a single CSV field.
const tagDelimiter = ", "

// Row is one line of the record table.
type Row struct {
	Index         int
	Title         string
	URL           string
	Status        string
	SuggestedTags string
}

// Partition splits reconciled products into the needs-tagging and
// already-tagged groups, preserving catalog order within each group.
type Partition struct {
	NeedsTagging  []domain.ReconciledProduct
	AlreadyTagged []domain.ReconciledProduct
}

// Split performs the stable partition.
func Split(reconciled []domain.ReconciledProduct) Partition {
	var p Partition
	for _, rp := range reconciled {
		if rp.AlreadyTagged {
			p.AlreadyTagged = append(p.AlreadyTagged, rp)
		} else {
			p.NeedsTagging = append(p.NeedsTagging, rp)
		}
	}
	return p
}

// Rows builds the record table, one row per product in catalog order.
// Index is 1-based to match the human-facing document.
func Rows(reconciled []domain.ReconciledProduct) []Row {
	rows := make([]Row, len(reconciled))
	for i, rp := range reconciled {
		status := StatusNeedsTagging
		if rp.AlreadyTagged {
			status = StatusAlreadyTagged
		}
		rows[i] = Row{
			Index:         i + 1,
			Title:         rp.Product.Title,
			URL:           rp.Product.URL,
			Status:        status,
			SuggestedTags: joinTags(rp.SuggestedTags),
		}
	}
	return rows
}

func joinTags(tags []domain.Tag) string {
	return strings.Join(domain.TagStrings(tags), tagDelimiter)
}

// SplitTags parses a joined suggested-tags field back into wire-format
// strings. Inverse of the joining performed by Rows.
func SplitTags(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, tagDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
