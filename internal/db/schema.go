package db

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	poster_url   TEXT NOT NULL DEFAULT '',
	tmdb_id      BIGINT,
	imdb_id      TEXT,
	genre        TEXT NOT NULL DEFAULT '',
	director     TEXT NOT NULL DEFAULT '',
	writer       TEXT NOT NULL DEFAULT '',
	year         INTEGER,
	actors       TEXT NOT NULL DEFAULT '',
	vote_average DOUBLE PRECISION,
	vote_count   INTEGER,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS movies_title_lower_idx ON movies (LOWER(title));
CREATE UNIQUE INDEX IF NOT EXISTS movies_tmdb_id_idx ON movies (tmdb_id) WHERE tmdb_id IS NOT NULL;
`

// Migrate creates the movies table and its indexes if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}

// Reset drops and recreates the movies table. Development only.
func (db *DB) Reset(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DROP TABLE IF EXISTS movies`); err != nil {
		return fmt.Errorf("failed to drop movies table: %w", err)
	}
	return db.Migrate(ctx)
}
