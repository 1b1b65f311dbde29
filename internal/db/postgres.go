package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectPostgres opens the pool, pings it and makes sure the schema exists.
func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Info("connected to postgres",
		zap.String("host", config.ConnConfig.Host),
		zap.String("database", config.ConnConfig.Database),
	)

	if err := InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Info("schema initialized")
	return pool, nil
}

// InitSchema creates the tables if they do not exist. Safe to run on every start.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	// -------------------------------
	// MENU
	// -------------------------------
	`
	CREATE TABLE IF NOT EXISTS flavor_options (
		id SERIAL PRIMARY KEY,
		text VARCHAR(120) NOT NULL,
		category VARCHAR(80) NOT NULL
	)
	`,
	`CREATE INDEX IF NOT EXISTS idx_flavor_options_text ON flavor_options (text)`,

	// -------------------------------
	// STAFF
	// -------------------------------
	`
	CREATE TABLE IF NOT EXISTS servers (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL
	)
	`,

	// -------------------------------
	// APPEND-ONLY TABLES
	// -------------------------------
	`
	CREATE TABLE IF NOT EXISTS generated_reviews (
		id SERIAL PRIMARY KEY,
		server_name VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
	`,
	`CREATE INDEX IF NOT EXISTS idx_generated_reviews_created_at ON generated_reviews (created_at)`,
	`
	CREATE TABLE IF NOT EXISTS menu_selections (
		id SERIAL PRIMARY KEY,
		dish_name VARCHAR(120) NOT NULL,
		dish_category VARCHAR(80) NOT NULL,
		selection_timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)
	`,
	`CREATE INDEX IF NOT EXISTS idx_menu_selections_ts ON menu_selections (selection_timestamp)`,
	`
	CREATE TABLE IF NOT EXISTS qualitative_feedback (
		id SERIAL PRIMARY KEY,
		category VARCHAR(80) NOT NULL,
		value VARCHAR(200) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
	`,
	`CREATE INDEX IF NOT EXISTS idx_qualitative_feedback_created_at ON qualitative_feedback (created_at)`,
	`
	CREATE TABLE IF NOT EXISTS internal_feedback (
		id SERIAL PRIMARY KEY,
		feedback_text TEXT NOT NULL,
		associated_server_id INTEGER NULL REFERENCES servers(id) ON DELETE SET NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT internal_feedback_status_check CHECK (status IN ('new', 'read', 'archived'))
	)
	`,
	`CREATE INDEX IF NOT EXISTS idx_internal_feedback_created_at ON internal_feedback (created_at)`,
}
