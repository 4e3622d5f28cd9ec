package database

import (
	"context"
	"fmt"
)

// Schema bootstrap. The statements are idempotent so every startup can run
// them; there is no migration tooling because the schema never changes shape
// at runtime.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS artist (
		id         UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS social (
		artist_id UUID PRIMARY KEY REFERENCES artist(id),
		website   TEXT,
		instagram TEXT,
		twitter   TEXT,
		facebook  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS poster (
		id             UUID PRIMARY KEY,
		artist_id      UUID NOT NULL REFERENCES artist(id),
		title          TEXT NOT NULL,
		year           INT NOT NULL,
		date_created   TIMESTAMPTZ NOT NULL,
		release_date   TEXT,
		class_type     TEXT,
		status         TEXT,
		technique      TEXT,
		size           TEXT,
		width          INT,
		height         INT,
		run_count      INT,
		image_url      TEXT,
		original_price NUMERIC,
		average_price  NUMERIC
	)`,
	`CREATE INDEX IF NOT EXISTS idx_poster_artist_id ON poster(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_artist_name ON artist(first_name, last_name)`,
}

// EnsureSchema creates the tables on first boot.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
