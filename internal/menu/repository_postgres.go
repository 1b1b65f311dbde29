package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CREATE
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, option *FlavorOption) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO flavor_options (text, category)
		VALUES ($1, $2)
		RETURNING id
	`, option.Text, option.Category).Scan(&option.ID)
}

// --------------------------------------------------
// UPDATE
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, option *FlavorOption) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE flavor_options
		SET text = $1,
		    category = $2
		WHERE id = $3
	`, option.Text, option.Category, option.ID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("flavor option %d: %w", option.ID, apperr.ErrNotFound)
	}
	return nil
}

// --------------------------------------------------
// DELETE (idempotent)
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM flavor_options WHERE id = $1`, id)
	return err
}

// --------------------------------------------------
// READS
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]FlavorOption, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, text, category
		FROM flavor_options
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []FlavorOption{}
	for rows.Next() {
		var o FlavorOption
		if err := rows.Scan(&o.ID, &o.Text, &o.Category); err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

func (r *PostgresRepository) FindByText(ctx context.Context, text string) (*FlavorOption, error) {
	var o FlavorOption
	err := r.db.QueryRow(ctx, `
		SELECT id, text, category
		FROM flavor_options
		WHERE text = $1
		ORDER BY id
		LIMIT 1
	`, text).Scan(&o.ID, &o.Text, &o.Category)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("flavor option %q: %w", text, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flavor_options`).Scan(&n)
	return n, err
}

// --------------------------------------------------
// REPLACE ALL (SEED, ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ReplaceAll(ctx context.Context, options []FlavorOption) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE flavor_options RESTART IDENTITY`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, o := range options {
		batch.Queue(`INSERT INTO flavor_options (text, category) VALUES ($1, $2)`, o.Text, o.Category)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
