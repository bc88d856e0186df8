package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder strips diacritics so "café" matches the "cafe" keyword.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText prepares product copy for rule matching: markup is stripped,
// diacritics folded, everything lowercased, and runs of non-alphanumeric
// characters collapsed to single spaces. "Cat-Eye" and "cat eye" normalize
// identically.
func normalizeText(text string) string {
	text = stripHTML(text)

	if folded, _, err := transform.String(accentFolder, text); err == nil {
		text = folded
	}

	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// stripHTML extracts the text content of markup. Plain text passes through
// untouched; a parse failure falls back to the raw string.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
