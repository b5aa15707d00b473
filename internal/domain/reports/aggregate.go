package reports

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var branchSuffix = regexp.MustCompile(`\s*\(.*\)`)

// NormalizeBranch strips a trailing parenthesized suffix from a branch
// display name and trims whitespace, so "North (Old)" and "North (New)"
// collapse to the same key. Only the monthly aggregation normalizes; the
// daily operations report the raw name.
func NormalizeBranch(name string) string {
	return strings.TrimSpace(branchSuffix.ReplaceAllString(name, ""))
}

// branchTotals accumulates per-key running sums while preserving the
// first-seen order of keys in the record stream.
type branchTotals struct {
	keys   []string
	totals map[string]decimal.Decimal
}

func newBranchTotals() *branchTotals {
	return &branchTotals{totals: make(map[string]decimal.Decimal)}
}

func (b *branchTotals) add(key string, v decimal.Decimal) {
	cur, seen := b.totals[key]
	if !seen {
		b.keys = append(b.keys, key)
	}
	b.totals[key] = cur.Add(v)
}
