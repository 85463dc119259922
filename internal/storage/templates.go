package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// LoadTemplates returns every persisted quick template in stored order.
func (s *SQLiteStorage) LoadTemplates(ctx context.Context) ([]model.QuickTemplate, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, note, amount, category_id
		FROM templates
		ORDER BY position, rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []model.QuickTemplate
	for rows.Next() {
		var tpl model.QuickTemplate
		if err := rows.Scan(&tpl.ID, &tpl.Note, &tpl.Amount, &tpl.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}

	slog.Debug("loaded templates", "count", len(templates))
	return templates, nil
}

// SaveTemplate inserts or updates a quick template row. A new row takes
// the next position; updating an existing row keeps its position, so the
// stored order stays insertion order across edits.
func (s *SQLiteStorage) SaveTemplate(ctx context.Context, tpl model.QuickTemplate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(tpl.ID, "tpl.ID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (id, note, amount, category_id, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM templates))
		ON CONFLICT(id) DO UPDATE SET
			note = excluded.note,
			amount = excluded.amount,
			category_id = excluded.category_id`,
		tpl.ID, tpl.Note, tpl.Amount, tpl.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return nil
}

// DeleteTemplate removes a quick template row. Unknown ids are not an
// error.
func (s *SQLiteStorage) DeleteTemplate(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}
