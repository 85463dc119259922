package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects. Failing to reach it is fatal.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					mode TEXT NOT NULL,
					amount REAL NOT NULL,
					note TEXT NOT NULL,
					date TEXT NOT NULL,
					category_id TEXT NOT NULL,
					template_id TEXT,
					created_at INTEGER NOT NULL,
					updated_at INTEGER
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_mode ON transactions(mode)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add quick templates",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS templates (
					id TEXT PRIMARY KEY,
					note TEXT NOT NULL,
					amount INTEGER NOT NULL,
					category_id TEXT NOT NULL,
					position INTEGER NOT NULL DEFAULT 0
				)
			`)
			return err
		},
	},
}

// Migrate brings the database schema up to the expected version. It is
// safe to call on every startup; already-applied migrations are skipped.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("schema version %d after migration, expected %d", final, ExpectedSchemaVersion)
	}

	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
