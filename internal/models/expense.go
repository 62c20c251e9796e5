package models

import "strings"

// Category is a spending bucket. The set is closed; anything the
// extractor or a client sends outside it collapses to Other.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

// Categories lists every bucket in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryInvestment,
	CategoryOther,
}

// ParseCategory matches s against the known buckets, ignoring case and
// surrounding whitespace. It reports false for anything outside the set.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// NormalizeCategory is the lenient variant used for AI output: unknown
// values become Other instead of an error.
func NormalizeCategory(s string) Category {
	if c, ok := ParseCategory(s); ok {
		return c
	}
	return CategoryOther
}

// Expense is one row of the ledger. Date is stored as YYYY-MM-DD so the
// lexicographic order used for sorting matches chronological order.
type Expense struct {
	ID          int64    `db:"id"`
	Date        string   `db:"date"`
	Category    Category `db:"category"`
	Amount      float64  `db:"amount"`
	Description string   `db:"description"`
}
