package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps each collection as one jsonb row in a single table.
// The whole-replace contract maps to an upsert of the full document.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, pings and prepares the collections table.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required for the postgres store")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS collections (name TEXT PRIMARY KEY, data JSONB NOT NULL)`); err != nil {
		return nil, fmt.Errorf("failed to prepare collections table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Read(name string, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	return json.Unmarshal(data, out)
}

func (s *PostgresStore) Write(name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`, name, data)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
