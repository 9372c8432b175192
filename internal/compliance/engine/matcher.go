package engine

import (
	"sort"
	"strings"
)

// BuildCorpus concatenates the product's text fields into one case-folded
// search corpus: name, description, category name and stringified metadata
// values. Metadata values are appended in key order so the corpus is
// deterministic for the same input.
func BuildCorpus(p Product) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString(" ")
	sb.WriteString(p.Description)
	sb.WriteString(" ")
	sb.WriteString(p.Category)

	if len(p.Metadata) > 0 {
		keys := make([]string, 0, len(p.Metadata))
		for k := range p.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(" ")
			sb.WriteString(p.Metadata[k])
		}
	}

	return strings.ToLower(sb.String())
}

// MatchesAny reports whether any keyword occurs as a substring of the corpus.
// Matching is deliberately permissive: no tokenization, no word boundaries,
// so compound and inflected terms still match. The corpus must already be
// case-folded; keywords are folded here.
func MatchesAny(corpus string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(corpus, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MatchingKeywords returns every keyword that occurs in the corpus, in table order.
func MatchingKeywords(corpus string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(corpus, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}
