// Package ledger implements the in-memory transaction store and its
// derived read-only views. The store exclusively owns the canonical
// collection; views project from snapshots and never mutate it.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// Store holds the committed transactions. All operations are synchronous
// and none of them fail: operations keyed by an unknown id are no-ops, a
// deliberate idempotent-by-id policy. Callers validate before committing;
// the store accepts whatever it is given.
type Store struct {
	items []model.Transaction
}

// NewStore creates a store seeded with the given transactions.
func NewStore(initial []model.Transaction) *Store {
	s := &Store{}
	s.ReplaceAll(initial)
	return s
}

// Add appends a transaction.
func (s *Store) Add(tx model.Transaction) {
	s.items = append(s.items, tx)
}

// Commit turns a draft into a transaction and adds it: a fresh id and
// CreatedAt are assigned here, everything else is copied verbatim from the
// draft. The caller resets the draft after a successful commit.
func (s *Store) Commit(d model.Draft, userID string) model.Transaction {
	tx := model.Transaction{
		ID:         uuid.NewString(),
		UserID:     userID,
		Mode:       d.Mode,
		Amount:     d.Amount,
		Note:       d.Note,
		Date:       d.Date,
		CategoryID: d.CategoryID,
		TemplateID: d.TemplateID,
		CreatedAt:  time.Now().UnixMilli(),
	}
	s.Add(tx)
	return tx
}

// Update shallow-merges patch into the transaction with the given id and
// stamps UpdatedAt. Unknown ids are ignored.
func (s *Store) Update(id string, patch model.TransactionPatch) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		tx := &s.items[i]
		if patch.Mode != nil {
			tx.Mode = *patch.Mode
		}
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
		}
		if patch.Note != nil {
			tx.Note = *patch.Note
		}
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		if patch.CategoryID != nil {
			tx.CategoryID = *patch.CategoryID
		}
		tx.UpdatedAt = time.Now().UnixMilli()
		return
	}
}

// Remove deletes the transaction with the given id. Unknown ids are
// ignored.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Restore re-inserts a previously removed transaction, preserving its
// original id and CreatedAt. Used by undo; behaves exactly like Add.
func (s *Store) Restore(tx model.Transaction) {
	s.Add(tx)
}

// ReplaceAll swaps the entire collection, used for the initial load from
// the persistence backend.
func (s *Store) ReplaceAll(transactions []model.Transaction) {
	s.items = make([]model.Transaction, len(transactions))
	copy(s.items, transactions)
}

// Get returns the transaction with the given id, if present.
func (s *Store) Get(id string) (model.Transaction, bool) {
	for _, tx := range s.items {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.items)
}

// Transactions returns a snapshot in canonical order: date descending,
// then CreatedAt descending. The ordering is applied at read time and is a
// pure function of the stored fields, so it is reproducible after any
// mutation sequence. Lexicographic comparison of the fixed-width ISO dates
// is chronological comparison.
func (s *Store) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
