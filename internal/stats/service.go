package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/review"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const topServers = 5

// FeedbackCounter reports how many internal notes are still unread.
type FeedbackCounter interface {
	CountNew(ctx context.Context) (int, error)
}

// Archiver stores a reset snapshot under key.
type Archiver interface {
	Archive(ctx context.Context, key string, body []byte) error
}

type Service struct {
	repo     Repository
	feedback FeedbackCounter
	archiver Archiver
	loc      *time.Location
	log      *zap.Logger
	now      func() time.Time
}

// NewService builds the reporting service. archiver may be nil, in which
// case reset skips the snapshot.
func NewService(repo Repository, feedback FeedbackCounter, archiver Archiver, loc *time.Location, log *zap.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		feedback: feedback,
		archiver: archiver,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// --------------------------------------------------
// Server ranking
// --------------------------------------------------
func (s *Service) ServerRanking(ctx context.Context, period Period) ([]ServerCount, error) {
	return s.repo.ServerCounts(ctx, period.Since(s.now()))
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------
func (s *Service) Dashboard(ctx context.Context, period Period) (*Dashboard, error) {
	now := s.now()
	since := period.Since(now)

	total, err := s.repo.ReviewCount(ctx, since)
	if err != nil {
		return nil, err
	}

	span := period.Days()
	if period == PeriodAll {
		first, err := s.repo.FirstReviewAt(ctx)
		if err != nil {
			return nil, err
		}
		span = 0
		if first != nil {
			span = SpanDays(*first, now, s.loc)
		}
	}

	daily, err := s.repo.DailyReviewCounts(ctx, TrendStart(now, s.loc, TrendDays), s.loc)
	if err != nil {
		return nil, err
	}

	ranking, err := s.repo.ServerCounts(ctx, since)
	if err != nil {
		return nil, err
	}
	if len(ranking) > topServers {
		ranking = ranking[:topServers]
	}

	unread := 0
	if s.feedback != nil {
		if unread, err = s.feedback.CountNew(ctx); err != nil {
			return nil, err
		}
	}

	return &Dashboard{
		Period:               period,
		TotalReviews:         total,
		AverageReviewsPerDay: AveragePerDay(total, span),
		Trend:                FillTrend(daily, now, s.loc, TrendDays),
		TopServers:           ranking,
		NewFeedbackCount:     unread,
	}, nil
}

// QualitativeSynthesis ranks tag values per qualitative category. Every
// category is present, empty when no tag was recorded.
func (s *Service) QualitativeSynthesis(ctx context.Context, period Period) (map[string][]ValueCount, error) {
	counts, err := s.repo.QualitativeCounts(ctx, period.Since(s.now()))
	if err != nil {
		return nil, err
	}

	out := make(map[string][]ValueCount, len(review.QualitativeCategories))
	for _, c := range review.QualitativeCategories {
		out[c] = []ValueCount{}
	}
	for _, qc := range counts {
		if _, known := out[qc.Category]; known {
			out[qc.Category] = append(out[qc.Category], qc.ValueCount)
		}
	}
	return out, nil
}

func (s *Service) MenuPerformance(ctx context.Context, period Period) ([]DishCount, error) {
	return s.repo.DishCounts(ctx, period.Since(s.now()))
}

// --------------------------------------------------
// Reset
// --------------------------------------------------

// Reset empties the append-only tables. When an archiver is configured the
// rows are uploaded first, inside the reset, and a failed upload leaves the
// data in place.
func (s *Service) Reset(ctx context.Context) error {
	var archive ArchiveFunc
	if s.archiver != nil {
		archive = s.archive
	}

	if err := s.repo.Reset(ctx, archive); err != nil {
		return err
	}

	s.log.Warn("statistics reset")
	return nil
}

func (s *Service) archive(ctx context.Context, snap *Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("resets/%s-%s.json", s.now().UTC().Format("20060102T150405Z"), uuid.NewString())
	if err := s.archiver.Archive(ctx, key, body); err != nil {
		return fmt.Errorf("archive before reset: %w", err)
	}

	s.log.Info("reset snapshot archived", zap.String("key", key), zap.Int("bytes", len(body)))
	return nil
}
