package ledger

import "github.com/yuhsinc/pocket-ledger/internal/model"

// Totals is the header summary over a list of transactions.
type Totals struct {
	Income  float64
	Expense float64
	Count   int
}

// Balance is income minus expense.
func (t Totals) Balance() float64 {
	return t.Income - t.Expense
}

// Summarize computes the income/expense totals for transactions, typically
// the output of Filter.
func Summarize(transactions []model.Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Mode {
		case model.ModeIncome:
			t.Income += tx.Amount
		case model.ModeExpense:
			t.Expense += tx.Amount
		}
		t.Count++
	}
	return t
}
