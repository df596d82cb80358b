// Package db provides PostgreSQL storage for the generated occupation dataset.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// EnsureSchema creates the occupations table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS occupations (
			soc_code         TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			education_level  TEXT NOT NULL DEFAULT '',
			median_wage      DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_employment BIGINT NOT NULL DEFAULT 0,
			region           TEXT NOT NULL DEFAULT '',
			metadata         JSONB,
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create occupations table: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS occupations_cluster_idx
		ON occupations ((metadata->>'careerCluster'))`)
	if err != nil {
		return fmt.Errorf("failed to create cluster index: %w", err)
	}
	return nil
}
