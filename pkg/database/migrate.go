package database

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the checked-in schema. The schema only uses
// CREATE TABLE IF NOT EXISTS so re-running it is safe.
func Migrate(db *sql.DB) error {
	return MigrateFrom(db, "docs/schema.sql")
}

// MigrateFrom applies the schema at an explicit path. Tests use this with a
// relative path into docs/.
func MigrateFrom(db *sql.DB, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
