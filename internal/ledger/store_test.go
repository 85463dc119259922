package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/testutil"
)

func TestTransactionsCanonicalOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Store)
		wantIDs []string
	}{
		{
			name: "date descending wins over insertion order",
			mutate: func(s *Store) {
				s.Add(testutil.Tx(1, "2024-01-01", model.ModeExpense, 85, "咖啡", model.CategoryFood))
				s.Add(testutil.Tx(2, "2024-03-15", model.ModeExpense, 30, "通勤", model.CategoryCommute))
				s.Add(testutil.Tx(3, "2024-02-10", model.ModeIncome, 1000, "薪水", model.CategoryIncome))
			},
			wantIDs: []string{"tx-002", "tx-003", "tx-001"},
		},
		{
			name: "same date breaks ties by createdAt descending",
			mutate: func(s *Store) {
				s.Add(testutil.Tx(1, "2024-01-01", model.ModeExpense, 10, "早餐", model.CategoryFood))
				s.Add(testutil.Tx(2, "2024-01-01", model.ModeExpense, 20, "午餐", model.CategoryFood))
				s.Add(testutil.Tx(3, "2024-01-01", model.ModeExpense, 30, "晚餐", model.CategoryFood))
			},
			wantIDs: []string{"tx-003", "tx-002", "tx-001"},
		},
		{
			name: "order re-derives after remove and restore",
			mutate: func(s *Store) {
				a := testutil.Tx(1, "2024-01-02", model.ModeExpense, 10, "a", model.CategoryOther)
				b := testutil.Tx(2, "2024-01-03", model.ModeExpense, 10, "b", model.CategoryOther)
				c := testutil.Tx(3, "2024-01-01", model.ModeExpense, 10, "c", model.CategoryOther)
				s.Add(a)
				s.Add(b)
				s.Add(c)
				s.Remove(b.ID)
				s.Restore(b)
			},
			wantIDs: []string{"tx-002", "tx-001", "tx-003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil)
			tt.mutate(s)

			var gotIDs []string
			for _, tx := range s.Transactions() {
				gotIDs = append(gotIDs, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestCommitCopiesDraftVerbatim(t *testing.T) {
	s := NewStore(nil)

	d := model.Draft{
		Mode:       model.ModeExpense,
		Amount:     85,
		Note:       "咖啡",
		Date:       "2024-01-01",
		CategoryID: model.CategoryFood,
	}

	tx := s.Commit(d, "user-1")

	require.NotEmpty(t, tx.ID)
	require.NotZero(t, tx.CreatedAt)
	assert.Equal(t, "user-1", tx.UserID)
	assert.Equal(t, model.ModeExpense, tx.Mode)
	assert.Equal(t, 85.0, tx.Amount)
	assert.Equal(t, "咖啡", tx.Note)
	assert.Equal(t, "2024-01-01", tx.Date)
	assert.Equal(t, model.CategoryFood, tx.CategoryID)
	assert.Empty(t, tx.TemplateID)
	assert.Zero(t, tx.UpdatedAt)

	// The committed transaction is in the store
	got, ok := s.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, tx, got)

	// Two commits never share an id
	tx2 := s.Commit(d, "user-1")
	assert.NotEqual(t, tx.ID, tx2.ID)
}

func TestUpdatePatchesShallowly(t *testing.T) {
	s := NewStore(nil)
	original := testutil.Tx(1, "2024-01-01", model.ModeExpense, 85, "咖啡", model.CategoryFood)
	s.Add(original)

	newAmount := 120.0
	s.Update(original.ID, model.TransactionPatch{Amount: &newAmount})

	got, ok := s.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, 120.0, got.Amount)
	assert.Equal(t, original.Note, got.Note)
	assert.Equal(t, original.Date, got.Date)
	assert.Equal(t, original.CreatedAt, got.CreatedAt)
	assert.NotZero(t, got.UpdatedAt)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := NewStore(nil)
	s.Add(testutil.Tx(1, "2024-01-01", model.ModeExpense, 10, "a", model.CategoryOther))

	amount := 99.0
	s.Update("missing", model.TransactionPatch{Amount: &amount})
	s.Remove("missing")

	require.Equal(t, 1, s.Len())
	got, ok := s.Get("tx-001")
	require.True(t, ok)
	assert.Equal(t, 10.0, got.Amount)
	assert.Zero(t, got.UpdatedAt)
}

func TestRestoreRoundTripsRemoval(t *testing.T) {
	s := NewStore(nil)
	for i := 1; i <= 5; i++ {
		s.Add(testutil.Tx(i, "2024-01-01", model.ModeExpense, float64(i), "entry", model.CategoryOther))
	}
	before := s.Transactions()

	removed, ok := s.Get("tx-003")
	require.True(t, ok)
	s.Remove(removed.ID)
	require.Equal(t, 4, s.Len())

	s.Restore(removed)
	after := s.Transactions()

	assert.ElementsMatch(t, before, after)
}

func TestReplaceAllAndSnapshotIsolation(t *testing.T) {
	initial := []model.Transaction{
		testutil.Tx(1, "2024-01-01", model.ModeExpense, 10, "a", model.CategoryOther),
	}
	s := NewStore(initial)

	// Mutating the input or the snapshot never reaches the store
	initial[0].Note = "mutated"
	snap := s.Transactions()
	snap[0].Note = "also mutated"

	got, ok := s.Get("tx-001")
	require.True(t, ok)
	assert.Equal(t, "a", got.Note)

	s.ReplaceAll(nil)
	assert.Zero(t, s.Len())
}

func TestOrderIsPureFunctionOfFields(t *testing.T) {
	// Same set inserted in two different orders sorts identically
	txs := []model.Transaction{
		testutil.Tx(1, "2024-02-01", model.ModeExpense, 1, "a", model.CategoryOther),
		testutil.Tx(2, "2024-01-15", model.ModeIncome, 2, "b", model.CategoryIncome),
		testutil.Tx(3, "2024-02-01", model.ModeExpense, 3, "c", model.CategoryFood),
		testutil.Tx(4, "2023-12-31", model.ModeExpense, 4, "d", model.CategoryOther),
	}

	forward := NewStore(txs)

	reversed := make([]model.Transaction, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		reversed = append(reversed, txs[i])
	}
	backward := NewStore(reversed)

	assert.Equal(t, forward.Transactions(), backward.Transactions())
}
