// Package risk parses free-text risk lists and tags each entry with a severity.
package risk

import (
	"strings"

	"github.com/samber/lo"
	"github.com/theirongolddev/pdash/internal/model"
)

// highKeywords mark a risk as High when any appears in its lower-cased text.
var highKeywords = []string{"delay", "shortage", "permit", "issue"}

// Keywords returns a copy of the keyword set that marks a risk High.
func Keywords() []string {
	out := make([]string, len(highKeywords))
	copy(out, highKeywords)
	return out
}

// Classify returns SeverityHigh if desc contains any high keyword,
// ignoring case, and SeverityLow otherwise.
func Classify(desc string) model.Severity {
	lower := strings.ToLower(desc)
	if lo.ContainsBy(highKeywords, func(k string) bool {
		return strings.Contains(lower, k)
	}) {
		return model.SeverityHigh
	}
	return model.SeverityLow
}

// Split breaks raw on commas, trims each piece and drops the empty ones.
// Order is preserved and duplicates are kept.
func Split(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(piece string, _ int) (string, bool) {
		piece = strings.TrimSpace(piece)
		return piece, piece != ""
	})
}

// Parse splits raw into classified risk entries.
// An empty or comma-only string yields an empty, non-nil slice.
func Parse(raw string) []model.RiskEntry {
	return lo.Map(Split(raw), func(desc string, _ int) model.RiskEntry {
		return model.RiskEntry{Description: desc, Severity: Classify(desc)}
	})
}
