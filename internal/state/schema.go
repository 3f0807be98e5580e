package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS sheet_state (
			name TEXT PRIMARY KEY,
			state_code INTEGER NOT NULL,
			super BLOB
		);

		CREATE TABLE IF NOT EXISTS sheet_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			state_code INTEGER NOT NULL,
			at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sheet_history_name_at ON sheet_history(name, at);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migrations for existing databases (ignore errors if column exists)
	_, _ = db.Exec(`ALTER TABLE sheet_state ADD COLUMN updated_at INTEGER`)

	return nil
}
