package feedback

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	entries map[int]Entry
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[int]Entry),
		nextID:  1,
	}
}

// Add stores a note as new. An empty server name becomes the placeholder.
func (r *InMemoryRepository) Add(text, serverName string, createdAt time.Time) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if serverName == "" {
		serverName = UnassignedServer
	}
	e := Entry{
		ID:           r.nextID,
		FeedbackText: text,
		ServerName:   serverName,
		Status:       StatusNew,
		CreatedAt:    createdAt,
	}
	r.nextID++
	r.entries[e.ID] = e
	return e
}

func (r *InMemoryRepository) List(ctx context.Context, filter Filter) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(filter.Search)
	out := []Entry{}
	for _, e := range r.entries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.FeedbackText), search) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("feedback %d: %w", id, apperr.ErrNotFound)
	}
	e.Status = status
	r.entries[id] = e
	return nil
}

func (r *InMemoryRepository) CountByStatus(ctx context.Context, status Status) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.entries {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}
