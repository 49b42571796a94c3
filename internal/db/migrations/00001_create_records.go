package migrations

// The auto-increment primary key and timestamp column types differ per
// driver, so the records table is created from Go rather than plain SQL.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateRecords, downCreateRecords)
}

func upCreateRecords(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS records (
    id         BIGSERIAL PRIMARY KEY,
    content    TEXT NOT NULL,
    tags       VARCHAR(127) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS records (
    id         BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    content    TEXT NOT NULL,
    tags       VARCHAR(127) NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS records (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    content    TEXT NOT NULL,
    tags       VARCHAR(127) NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

func downCreateRecords(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS records`)
	return err
}
