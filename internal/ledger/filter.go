package ledger

import (
	"strings"

	"github.com/yuhsinc/pocket-ledger/internal/category"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// ModeFilter selects which modes a projection includes.
type ModeFilter string

const (
	// FilterAll keeps every mode.
	FilterAll ModeFilter = "all"
	// FilterExpense keeps only expenses.
	FilterExpense ModeFilter = "expense"
	// FilterIncome keeps only income.
	FilterIncome ModeFilter = "income"
)

// Valid reports whether f is a known filter value.
func (f ModeFilter) Valid() bool {
	return f == FilterAll || f == FilterExpense || f == FilterIncome
}

// Filter returns the subsequence of transactions matching the mode filter
// and the free-text query. Both predicates are conjunctive. The query is
// trimmed and matched case-insensitively against the note and the display
// label of the transaction's category, so searching a category name finds
// entries whose notes never mention it. An empty query matches everything
// that passes the mode filter.
//
// Filter is a pure projection: deterministic, side-effect free, input
// order preserved, input never mutated. It is safe to call redundantly and
// idempotent over its own output.
func Filter(transactions []model.Transaction, mode ModeFilter, query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if mode != FilterAll && tx.Mode != model.Mode(mode) {
			continue
		}
		if q != "" && !matchesQuery(tx, q) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesQuery(tx model.Transaction, q string) bool {
	if strings.Contains(strings.ToLower(tx.Note), q) {
		return true
	}
	label := category.Label(tx.CategoryID)
	return strings.Contains(strings.ToLower(label), q)
}
