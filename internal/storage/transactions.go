package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// LoadTransactions returns every persisted transaction. Ordering is left
// to the in-memory store, which sorts canonically at read time anyway.
func (s *SQLiteStorage) LoadTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, mode, amount, note, date, category_id, template_id, created_at, updated_at
		FROM transactions`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var (
			tx         model.Transaction
			templateID sql.NullString
			updatedAt  sql.NullInt64
		)
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Mode, &tx.Amount, &tx.Note,
			&tx.Date, &tx.CategoryID, &templateID, &tx.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.TemplateID = templateID.String
		tx.UpdatedAt = updatedAt.Int64
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("loaded transactions", "count", len(transactions))
	return transactions, nil
}

// SaveTransaction inserts or replaces a transaction row. Upsert semantics
// make save usable after add, update, and restore alike.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, tx model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(tx.ID, "tx.ID"); err != nil {
		return err
	}

	templateID := sql.NullString{String: tx.TemplateID, Valid: tx.TemplateID != ""}
	updatedAt := sql.NullInt64{Int64: tx.UpdatedAt, Valid: tx.UpdatedAt != 0}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, user_id, mode, amount, note, date, category_id, template_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.UserID, tx.Mode, tx.Amount, tx.Note, tx.Date,
		tx.CategoryID, templateID, tx.CreatedAt, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction row. Deleting an id that does
// not exist is not an error, matching the in-memory store's
// idempotent-by-id policy.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
