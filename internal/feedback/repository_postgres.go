package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST (newest first)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `
		SELECT f.id, f.feedback_text, COALESCE(s.name, $1), f.status, f.created_at
		FROM internal_feedback f
		LEFT JOIN servers s ON s.id = f.associated_server_id
	`
	args := []any{UnassignedServer}
	var where []string

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("f.status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where = append(where, fmt.Sprintf("f.feedback_text ILIKE $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY f.created_at DESC, f.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.ID, &e.FeedbackText, &e.ServerName, &status, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Status = Status(status)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// --------------------------------------------------
// UPDATE STATUS
// --------------------------------------------------
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE internal_feedback
		SET status = $1
		WHERE id = $2
	`, string(status), id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("feedback %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status Status) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM internal_feedback WHERE status = $1`, string(status),
	).Scan(&n)
	return n, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
