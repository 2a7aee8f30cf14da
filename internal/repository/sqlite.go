package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/parsewell/invoice-parser/gen/ent"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens a file-backed (or in-memory) SQLite database for local
// single-binary runs and migrates the schema. The CLI tools use this when no
// Postgres DSN is configured.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	logger.Info("opening sqlite database", "path", path)
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	// modernc sqlite is single-writer; more connections deadlock under load.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("sqlite schema migration failed", "error", err)
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
