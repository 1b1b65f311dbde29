package stats

import (
	"context"
	"time"
)

// Repository reads the append-only tables. A nil since means no lower bound.
type Repository interface {
	ServerCounts(ctx context.Context, since *time.Time) ([]ServerCount, error)
	ReviewCount(ctx context.Context, since *time.Time) (int, error)
	FirstReviewAt(ctx context.Context) (*time.Time, error)
	DailyReviewCounts(ctx context.Context, from time.Time, loc *time.Location) (map[string]int, error)
	QualitativeCounts(ctx context.Context, since *time.Time) ([]QualitativeCount, error)
	DishCounts(ctx context.Context, since *time.Time) ([]DishCount, error)

	// Reset empties the append-only tables and restarts their ids at 1.
	// When archive is set it receives the rows about to be removed, with
	// writers blocked until the reset is done; an archive error leaves
	// everything in place.
	Reset(ctx context.Context, archive ArchiveFunc) error
}

type ArchiveFunc func(ctx context.Context, snap *Snapshot) error
