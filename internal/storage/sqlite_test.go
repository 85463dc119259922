package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestNewSQLiteStorageValidation(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tx := model.Transaction{
		ID:         "tx-1",
		UserID:     "local",
		Mode:       model.ModeExpense,
		Amount:     85,
		Note:       "咖啡",
		Date:       "2024-01-01",
		CategoryID: model.CategoryCoffee,
		TemplateID: "t3",
		CreatedAt:  1704067200000,
	}

	require.NoError(t, store.SaveTransaction(ctx, tx))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, tx, loaded[0])
}

func TestSaveTransactionUpserts(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tx := model.Transaction{
		ID:         "tx-1",
		UserID:     "local",
		Mode:       model.ModeExpense,
		Amount:     85,
		Note:       "咖啡",
		Date:       "2024-01-01",
		CategoryID: model.CategoryCoffee,
		CreatedAt:  1704067200000,
	}
	require.NoError(t, store.SaveTransaction(ctx, tx))

	tx.Amount = 120
	tx.UpdatedAt = 1704153600000
	require.NoError(t, store.SaveTransaction(ctx, tx))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 120.0, loaded[0].Amount)
	assert.Equal(t, int64(1704153600000), loaded[0].UpdatedAt)
}

func TestEmptyTemplateIDLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tx := model.Transaction{
		ID:         "tx-1",
		UserID:     "local",
		Mode:       model.ModeIncome,
		Amount:     1000,
		Note:       "薪水",
		Date:       "2024-01-05",
		CategoryID: model.CategoryIncome,
		CreatedAt:  1704412800000,
	}
	require.NoError(t, store.SaveTransaction(ctx, tx))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Empty(t, loaded[0].TemplateID)
	assert.Zero(t, loaded[0].UpdatedAt)
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tx := model.Transaction{
		ID: "tx-1", UserID: "local", Mode: model.ModeExpense,
		Amount: 10, Note: "a", Date: "2024-01-01",
		CategoryID: model.CategoryOther, CreatedAt: 1,
	}
	require.NoError(t, store.SaveTransaction(ctx, tx))
	require.NoError(t, store.DeleteTransaction(ctx, "tx-1"))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// Deleting an unknown id is not an error
	require.NoError(t, store.DeleteTransaction(ctx, "missing"))
}

func TestTemplateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := model.QuickTemplate{ID: "t1", Note: "固定通勤", Amount: 30, CategoryID: model.CategoryCommute}
	second := model.QuickTemplate{ID: "t2", Note: "咖啡", Amount: 85, CategoryID: model.CategoryCoffee}
	require.NoError(t, store.SaveTemplate(ctx, first))
	require.NoError(t, store.SaveTemplate(ctx, second))

	loaded, err := store.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.QuickTemplate{first, second}, loaded)

	require.NoError(t, store.DeleteTemplate(ctx, "t1"))
	loaded, err = store.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.QuickTemplate{second}, loaded)

	require.NoError(t, store.DeleteTemplate(ctx, "missing"))
}

func TestSaveTemplateKeepsStoredOrderAcrossUpdates(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := model.QuickTemplate{ID: "t1", Note: "固定通勤", Amount: 30, CategoryID: model.CategoryCommute}
	second := model.QuickTemplate{ID: "t2", Note: "健身房", Amount: 50, CategoryID: model.CategoryFitness}
	third := model.QuickTemplate{ID: "t3", Note: "咖啡", Amount: 85, CategoryID: model.CategoryCoffee}
	for _, tpl := range []model.QuickTemplate{first, second, third} {
		require.NoError(t, store.SaveTemplate(ctx, tpl))
	}

	// Editing the first template must not move it to the end of the list
	first.Amount = 35
	require.NoError(t, store.SaveTemplate(ctx, first))

	loaded, err := store.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.QuickTemplate{first, second, third}, loaded)
}

func TestValidationRejectsEmptyIDs(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SaveTransaction(ctx, model.Transaction{})
	require.ErrorIs(t, err, ErrEmptyString)

	err = store.DeleteTransaction(ctx, " ")
	require.ErrorIs(t, err, ErrEmptyString)

	err = store.SaveTemplate(ctx, model.QuickTemplate{})
	require.ErrorIs(t, err, ErrEmptyString)
}
