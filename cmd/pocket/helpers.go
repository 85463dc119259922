package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/yuhsinc/pocket-ledger/internal/common"
	"github.com/yuhsinc/pocket-ledger/internal/config"
	"github.com/yuhsinc/pocket-ledger/internal/ledger"
	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/service"
	"github.com/yuhsinc/pocket-ledger/internal/storage"
	"github.com/yuhsinc/pocket-ledger/internal/template"
)

// initStorage initializes the storage backend with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadLedger fills an in-memory transaction store from the backend.
func loadLedger(ctx context.Context, store service.Storage) (*ledger.Store, error) {
	transactions, err := store.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	common.LogDebug("ledger loaded", common.Fields{"transactions": len(transactions)})
	return ledger.NewStore(transactions), nil
}

// seedTemplates is the starter set written to an empty database on
// first run.
var seedTemplates = []model.QuickTemplate{
	{Note: "固定通勤", Amount: 30, CategoryID: model.CategoryCommute},
	{Note: "健身房", Amount: 50, CategoryID: model.CategoryFitness},
	{Note: "咖啡", Amount: 85, CategoryID: model.CategoryCoffee},
}

// loadTemplates fills an in-memory template store from the backend,
// seeding the starter templates on first run.
func loadTemplates(ctx context.Context, store service.Storage) (*template.Store, error) {
	templates, err := store.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if len(templates) == 0 {
		for _, tpl := range seedTemplates {
			tpl.ID = template.NewID()
			if err := store.SaveTemplate(ctx, tpl); err != nil {
				return nil, fmt.Errorf("failed to seed template: %w", err)
			}
			templates = append(templates, tpl)
		}
		common.LogInfo("seeded starter templates", common.Fields{"count": len(templates)})
	}

	return template.NewStore(templates), nil
}

// userID returns the configured owner id stamped on new transactions.
func userID() string {
	return viper.GetString("user.id")
}

// undoWindow returns the configured undo window.
func undoWindow() time.Duration {
	return time.Duration(viper.GetInt("undo.window_ms")) * time.Millisecond
}
