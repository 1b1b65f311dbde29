package staff

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

func (r *PostgresRepository) Create(ctx context.Context, server *Server) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO servers (name)
		VALUES ($1)
		RETURNING id
	`, server.Name).Scan(&server.ID)

	if apperr.IsUniqueViolation(err) {
		return fmt.Errorf("server %q: %w", server.Name, apperr.ErrConflict)
	}
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, server *Server) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE servers
		SET name = $1
		WHERE id = $2
	`, server.Name, server.ID)

	if apperr.IsUniqueViolation(err) {
		return fmt.Errorf("server %q: %w", server.Name, apperr.ErrConflict)
	}
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("server %d: %w", server.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Server, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM servers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	servers := []Server{}
	for rows.Next() {
		var s Server
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}
	return servers, rows.Err()
}

func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*Server, error) {
	var s Server
	err := r.db.QueryRow(ctx, `SELECT id, name FROM servers WHERE name = $1`, name).Scan(&s.ID, &s.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("server %q: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// DELETE WITH DEPENDENTS (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var name string
	err = tx.QueryRow(ctx, `SELECT name FROM servers WHERE id = $1 FOR UPDATE`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	// 1. review counters are keyed by name, not by id
	if _, err := tx.Exec(ctx, `DELETE FROM generated_reviews WHERE server_name = $1`, name); err != nil {
		return err
	}

	// 2. keep the feedback, drop the reference
	if _, err := tx.Exec(ctx, `
		UPDATE internal_feedback
		SET associated_server_id = NULL
		WHERE associated_server_id = $1
	`, id); err != nil {
		return err
	}

	// 3. the server itself
	if _, err := tx.Exec(ctx, `DELETE FROM servers WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
