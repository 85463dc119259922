// Package testutil provides shared helpers for tests that need a real
// storage backend or canned domain fixtures.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite backend with automatic
// cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Tx builds a transaction fixture. The sequence number keeps ids unique
// and makes CreatedAt ordering explicit in tests.
func Tx(seq int, date string, mode model.Mode, amount float64, note string, cat model.CategoryID) model.Transaction {
	return model.Transaction{
		ID:         fmt.Sprintf("tx-%03d", seq),
		UserID:     "test-user",
		Mode:       mode,
		Amount:     amount,
		Note:       note,
		Date:       date,
		CategoryID: cat,
		CreatedAt:  int64(1700000000000 + seq),
	}
}
