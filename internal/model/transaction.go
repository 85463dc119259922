package model

// Mode indicates whether a record represents money spent or received.
type Mode string

const (
	// ModeExpense represents money spent.
	ModeExpense Mode = "expense"
	// ModeIncome represents money received.
	ModeIncome Mode = "income"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeExpense || m == ModeIncome
}

// Transaction represents a single committed expense or income entry.
// ID and CreatedAt are assigned at commit time and never regenerated,
// including when a deleted transaction is restored through undo.
type Transaction struct {
	ID         string
	UserID     string
	Mode       Mode
	Note       string
	Date       string // fixed-width ISO date, YYYY-MM-DD
	CategoryID CategoryID
	TemplateID string // quick template this entry came from, empty if none
	Amount     float64
	CreatedAt  int64 // epoch milliseconds
	UpdatedAt  int64 // epoch milliseconds, zero until first update
}

// TransactionPatch describes a partial update to a transaction.
// Nil fields are left untouched.
type TransactionPatch struct {
	Mode       *Mode
	Amount     *float64
	Note       *string
	Date       *string
	CategoryID *CategoryID
}
