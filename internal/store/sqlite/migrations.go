package sqlite

import (
	"fmt"
	"log"
)

// RunMigrations applies any pending database migrations.
func (ts *TaskStore) RunMigrations() error {
	// Databases created before the timestamp columns existed need them added.
	if err := ts.runTimestampMigration(); err != nil {
		return err
	}

	return nil
}

func (ts *TaskStore) runTimestampMigration() error {
	// Check if timestamp columns exist
	var count int
	err := ts.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('tasks')
		WHERE name IN ('created_at', 'updated_at')
	`).Scan(&count)

	if err != nil {
		return fmt.Errorf("checking for timestamp columns: %w", err)
	}

	// If columns don't exist, add them
	if count < 2 {
		log.Println("Running migration: Adding timestamp columns...")

		tx, err := ts.conn.Begin()
		if err != nil {
			return fmt.Errorf("starting transaction: %w", err)
		}
		defer tx.Rollback()

		// Add created_at column
		_, err = tx.Exec(`ALTER TABLE tasks ADD COLUMN created_at DATETIME`)
		if err != nil && err.Error() != "duplicate column name: created_at" {
			return fmt.Errorf("adding created_at column: %w", err)
		}

		// Add updated_at column
		_, err = tx.Exec(`ALTER TABLE tasks ADD COLUMN updated_at DATETIME`)
		if err != nil && err.Error() != "duplicate column name: updated_at" {
			return fmt.Errorf("adding updated_at column: %w", err)
		}

		// Backfill existing rows
		_, err = tx.Exec(`UPDATE tasks SET created_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE created_at IS NULL`)
		if err != nil {
			return fmt.Errorf("backfilling timestamps: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration: %w", err)
		}

		log.Println("Migration completed successfully")
	}

	return nil
}
