// Package storage persists the team tier lists in PostgreSQL so registry
// edits survive restarts.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/MatchPredictor/internal/tiers"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

const pingMaxElapsed = 30 * time.Second

// New opens the connection, waits for the database to accept pings and
// creates the schema. Ping retries with exponential backoff so a container
// that starts before its database does not die immediately.
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = pingMaxElapsed
	if err := backoff.Retry(func() error {
		if pingErr := db.Ping(); pingErr != nil {
			log.Warn().Err(pingErr).Msg("database not ready, retrying")
			return pingErr
		}
		return nil
	}, policy); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist. The serial
// id preserves insertion order, which the registry relies on when two teams
// share a name across tiers.
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS team_tiers (
			id SERIAL PRIMARY KEY,
			tier TEXT NOT NULL,
			team_name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (tier, team_name)
		)
	`)
	return err
}

// SaveTeam records one team under a tier. Duplicates are ignored.
func (db *DB) SaveTeam(tier, name string) error {
	_, err := db.Exec(`
		INSERT INTO team_tiers (tier, team_name)
		VALUES ($1, $2)
		ON CONFLICT (tier, team_name) DO NOTHING
	`, tier, name)
	if err != nil {
		return fmt.Errorf("save team %q: %w", name, err)
	}
	return nil
}

// LoadRegistry builds a registry from the stored tier lists layered on top
// of the built-in defaults.
func (db *DB) LoadRegistry() (*tiers.Registry, error) {
	rows, err := db.Query(`
		SELECT tier, team_name
		FROM team_tiers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("load tiers: %w", err)
	}
	defer rows.Close()

	registry := tiers.DefaultRegistry()
	loaded := 0
	for rows.Next() {
		var tier, name string
		if err := rows.Scan(&tier, &name); err != nil {
			return nil, fmt.Errorf("scan tier row: %w", err)
		}
		if err := registry.AddTeam(tier, name); err != nil {
			log.Warn().Str("tier", tier).Str("team", name).Err(err).Msg("skipping stored team")
			continue
		}
		loaded++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tier rows: %w", err)
	}

	log.Info().Int("teams", loaded).Msg("tier registry loaded from database")
	return registry, nil
}
