package rules

import (
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/sunward-optics/frametag/internal/domain"
)

// Engine applies a rule table to normalized text. All keywords across all
// rules are compiled into a single Aho-Corasick automaton so matching is one
// pass over the text regardless of table size. The engine is immutable after
// construction and safe for concurrent use.
type Engine struct {
	table    Table
	matcher  *ahocorasick.Matcher
	keywords []string
	kwToRule map[string][]int // normalized keyword -> rule indexes
	patterns map[int]*regexp.Regexp
}

// NewEngine compiles the table into a matching engine.
func NewEngine(table Table) *Engine {
	e := &Engine{
		table:    table,
		kwToRule: make(map[string][]int),
		patterns: make(map[int]*regexp.Regexp),
	}

	seen := make(map[string]struct{})
	for i, rule := range table {
		for _, kw := range rule.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				continue
			}
			if _, dup := seen[normalized]; !dup {
				seen[normalized] = struct{}{}
				e.keywords = append(e.keywords, normalized)
			}
			e.kwToRule[normalized] = append(e.kwToRule[normalized], i)
		}
		if rule.Pattern != "" {
			e.patterns[i] = regexp.MustCompile("(?i)" + rule.Pattern)
		}
	}

	if len(e.keywords) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(e.keywords)
	}
	return e
}

// Table returns the rule table the engine was built from.
func (e *Engine) Table() Table {
	return e.table
}

// Match returns the tags of every rule that fires against the normalized
// text, in rule declaration order, de-duplicated. Matching is not mutually
// exclusive: a product can legitimately collect both style:round and
// style:square.
func (e *Engine) Match(text string) []domain.Tag {
	fired := make(map[int]struct{})

	if e.matcher != nil {
		for _, hit := range e.matcher.Match([]byte(text)) {
			if hit >= len(e.keywords) {
				continue
			}
			for _, ruleIdx := range e.kwToRule[e.keywords[hit]] {
				fired[ruleIdx] = struct{}{}
			}
		}
	}

	for ruleIdx, re := range e.patterns {
		if _, ok := fired[ruleIdx]; ok {
			continue
		}
		if re.MatchString(text) {
			fired[ruleIdx] = struct{}{}
		}
	}

	// Emit in declaration order; identical (category, value) pairs collapse.
	tags := make([]domain.Tag, 0, len(fired))
	emitted := make(map[domain.Tag]struct{})
	for i := range e.table {
		if _, ok := fired[i]; !ok {
			continue
		}
		tag := e.table[i].Tag()
		if _, dup := emitted[tag]; dup {
			continue
		}
		emitted[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// RuleCount returns the number of rules in the table.
func (e *Engine) RuleCount() int {
	return len(e.table)
}

// KeywordCount returns the number of distinct keywords in the automaton.
func (e *Engine) KeywordCount() int {
	return len(e.keywords)
}
