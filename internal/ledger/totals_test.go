package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/testutil"
)

func TestSummarize(t *testing.T) {
	txs := []model.Transaction{
		testutil.Tx(1, "2024-03-01", model.ModeExpense, 85, "咖啡", model.CategoryCoffee),
		testutil.Tx(2, "2024-03-02", model.ModeExpense, 120.5, "超市", model.CategoryFood),
		testutil.Tx(3, "2024-03-03", model.ModeIncome, 50000, "薪水", model.CategoryIncome),
	}

	totals := Summarize(txs)

	assert.Equal(t, 3, totals.Count)
	assert.InDelta(t, 205.5, totals.Expense, 1e-9)
	assert.InDelta(t, 50000, totals.Income, 1e-9)
	assert.InDelta(t, 49794.5, totals.Balance(), 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)

	assert.Zero(t, totals.Count)
	assert.Zero(t, totals.Income)
	assert.Zero(t, totals.Expense)
	assert.Zero(t, totals.Balance())
}
