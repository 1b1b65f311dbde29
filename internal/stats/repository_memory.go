package stats

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository holds the append-only tables in slices.
type InMemoryRepository struct {
	mu          sync.Mutex
	reviews     []GeneratedReview
	selections  []MenuSelection
	qualitative []QualitativeRow
	feedback    []FeedbackRow
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) AddReview(server string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, GeneratedReview{ID: len(r.reviews) + 1, ServerName: server, CreatedAt: at})
}

func (r *InMemoryRepository) AddSelection(dish, category string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections = append(r.selections, MenuSelection{ID: len(r.selections) + 1, DishName: dish, DishCategory: category, SelectedAt: at})
}

func (r *InMemoryRepository) AddQualitative(category, value string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qualitative = append(r.qualitative, QualitativeRow{ID: len(r.qualitative) + 1, Category: category, Value: value, CreatedAt: at})
}

func (r *InMemoryRepository) AddFeedback(text string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, FeedbackRow{ID: len(r.feedback) + 1, Text: text, Status: "new", CreatedAt: at})
}

func inWindow(at time.Time, since *time.Time) bool {
	return since == nil || !at.Before(*since)
}

func (r *InMemoryRepository) ServerCounts(ctx context.Context, since *time.Time) ([]ServerCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[string]int{}
	for _, rv := range r.reviews {
		if inWindow(rv.CreatedAt, since) {
			counts[rv.ServerName]++
		}
	}

	out := make([]ServerCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, ServerCount{ServerName: name, ReviewCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReviewCount != out[j].ReviewCount {
			return out[i].ReviewCount > out[j].ReviewCount
		}
		return out[i].ServerName < out[j].ServerName
	})
	return out, nil
}

func (r *InMemoryRepository) ReviewCount(ctx context.Context, since *time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, rv := range r.reviews {
		if inWindow(rv.CreatedAt, since) {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) FirstReviewAt(ctx context.Context) (*time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var first *time.Time
	for _, rv := range r.reviews {
		if first == nil || rv.CreatedAt.Before(*first) {
			at := rv.CreatedAt
			first = &at
		}
	}
	return first, nil
}

func (r *InMemoryRepository) DailyReviewCounts(ctx context.Context, from time.Time, loc *time.Location) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[string]int{}
	for _, rv := range r.reviews {
		if !rv.CreatedAt.Before(from) {
			counts[rv.CreatedAt.In(loc).Format(dateLayout)]++
		}
	}
	return counts, nil
}

func (r *InMemoryRepository) QualitativeCounts(ctx context.Context, since *time.Time) ([]QualitativeCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct{ category, value string }
	counts := map[key]int{}
	for _, q := range r.qualitative {
		if inWindow(q.CreatedAt, since) {
			counts[key{q.Category, q.Value}]++
		}
	}

	out := make([]QualitativeCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, QualitativeCount{Category: k.category, ValueCount: ValueCount{Value: k.value, Count: n}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

func (r *InMemoryRepository) DishCounts(ctx context.Context, since *time.Time) ([]DishCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct{ name, category string }
	counts := map[key]int{}
	for _, s := range r.selections {
		if inWindow(s.SelectedAt, since) {
			counts[key{s.DishName, s.DishCategory}]++
		}
	}

	out := make([]DishCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, DishCount{DishName: k.name, DishCategory: k.category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].DishName < out[j].DishName
	})
	return out, nil
}

// Snapshot copies the current rows.
func (r *InMemoryRepository) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *InMemoryRepository) snapshot() *Snapshot {
	return &Snapshot{
		TakenAt:             time.Now().UTC(),
		GeneratedReviews:    append([]GeneratedReview{}, r.reviews...),
		MenuSelections:      append([]MenuSelection{}, r.selections...),
		QualitativeFeedback: append([]QualitativeRow{}, r.qualitative...),
		InternalFeedback:    append([]FeedbackRow{}, r.feedback...),
	}
}

func (r *InMemoryRepository) Reset(ctx context.Context, archive ArchiveFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if archive != nil {
		if err := archive(ctx, r.snapshot()); err != nil {
			return err
		}
	}

	r.reviews = nil
	r.selections = nil
	r.qualitative = nil
	r.feedback = nil
	return nil
}
