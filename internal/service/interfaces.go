// Package service defines the contracts between the in-memory stores and
// their collaborators.
package service

import (
	"context"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// Storage is the persistence backend the ledger sits in front of. The
// in-memory stores never call it themselves: commands load state through
// it, mutate locally, and write the mutation back afterwards, so the store
// contracts hold with or without a backend attached.
type Storage interface {
	// Transaction operations
	LoadTransactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransaction(ctx context.Context, tx model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	// Quick template operations
	LoadTemplates(ctx context.Context) ([]model.QuickTemplate, error)
	SaveTemplate(ctx context.Context, tpl model.QuickTemplate) error
	DeleteTemplate(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
