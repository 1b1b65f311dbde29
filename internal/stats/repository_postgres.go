package stats

import (
	"context"
	"fmt"
	"time"

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
// REVIEWS
// --------------------------------------------------
func (r *PostgresRepository) ServerCounts(ctx context.Context, since *time.Time) ([]ServerCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT server_name, COUNT(*)
		FROM generated_reviews
		WHERE $1::timestamptz IS NULL OR created_at >= $1
		GROUP BY server_name
		ORDER BY COUNT(*) DESC, server_name
	`, since)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ServerCount, error) {
		var sc ServerCount
		err := row.Scan(&sc.ServerName, &sc.ReviewCount)
		return sc, err
	})
}

func (r *PostgresRepository) ReviewCount(ctx context.Context, since *time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM generated_reviews
		WHERE $1::timestamptz IS NULL OR created_at >= $1
	`, since).Scan(&n)
	return n, err
}

func (r *PostgresRepository) FirstReviewAt(ctx context.Context) (*time.Time, error) {
	var first *time.Time
	err := r.db.QueryRow(ctx, `SELECT MIN(created_at) FROM generated_reviews`).Scan(&first)
	return first, err
}

func (r *PostgresRepository) DailyReviewCounts(ctx context.Context, from time.Time, loc *time.Location) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char((created_at AT TIME ZONE $2)::date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM generated_reviews
		WHERE created_at >= $1
		GROUP BY day
	`, from, loc.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, err
		}
		counts[day] = n
	}
	return counts, rows.Err()
}

// --------------------------------------------------
// TAGS AND DISHES
// --------------------------------------------------
func (r *PostgresRepository) QualitativeCounts(ctx context.Context, since *time.Time) ([]QualitativeCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, value, COUNT(*)
		FROM qualitative_feedback
		WHERE $1::timestamptz IS NULL OR created_at >= $1
		GROUP BY category, value
		ORDER BY COUNT(*) DESC, value
	`, since)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (QualitativeCount, error) {
		var qc QualitativeCount
		err := row.Scan(&qc.Category, &qc.Value, &qc.Count)
		return qc, err
	})
}

func (r *PostgresRepository) DishCounts(ctx context.Context, since *time.Time) ([]DishCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT dish_name, dish_category, COUNT(*)
		FROM menu_selections
		WHERE $1::timestamptz IS NULL OR selection_timestamp >= $1
		GROUP BY dish_name, dish_category
		ORDER BY COUNT(*) DESC, dish_name
	`, since)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DishCount, error) {
		var dc DishCount
		err := row.Scan(&dc.DishName, &dc.DishCategory, &dc.Count)
		return dc, err
	})
}

// --------------------------------------------------
// SNAPSHOT + RESET
// --------------------------------------------------
func (r *PostgresRepository) Reset(ctx context.Context, archive ArchiveFunc) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// inserts wait here until the truncate commits
	if _, err := tx.Exec(ctx, `
		LOCK TABLE generated_reviews, menu_selections, qualitative_feedback, internal_feedback
		IN ACCESS EXCLUSIVE MODE
	`); err != nil {
		return err
	}

	if archive != nil {
		snap, err := snapshot(ctx, tx)
		if err != nil {
			return fmt.Errorf("snapshot before reset: %w", err)
		}
		if err := archive(ctx, snap); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		TRUNCATE generated_reviews, menu_selections, qualitative_feedback, internal_feedback
		RESTART IDENTITY
	`); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func snapshot(ctx context.Context, tx pgx.Tx) (*Snapshot, error) {
	var err error
	snap := &Snapshot{TakenAt: time.Now().UTC()}

	rows, _ := tx.Query(ctx, `SELECT id, server_name, created_at FROM generated_reviews ORDER BY id`)
	if snap.GeneratedReviews, err = pgx.CollectRows(rows, pgx.RowToStructByPos[GeneratedReview]); err != nil {
		return nil, err
	}

	rows, _ = tx.Query(ctx, `SELECT id, dish_name, dish_category, selection_timestamp FROM menu_selections ORDER BY id`)
	if snap.MenuSelections, err = pgx.CollectRows(rows, pgx.RowToStructByPos[MenuSelection]); err != nil {
		return nil, err
	}

	rows, _ = tx.Query(ctx, `SELECT id, category, value, created_at FROM qualitative_feedback ORDER BY id`)
	if snap.QualitativeFeedback, err = pgx.CollectRows(rows, pgx.RowToStructByPos[QualitativeRow]); err != nil {
		return nil, err
	}

	rows, _ = tx.Query(ctx, `SELECT id, feedback_text, associated_server_id, status, created_at FROM internal_feedback ORDER BY id`)
	if snap.InternalFeedback, err = pgx.CollectRows(rows, pgx.RowToStructByPos[FeedbackRow]); err != nil {
		return nil, err
	}

	return snap, nil
}
