package menu

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

// InMemoryRepository backs tests and local runs without Postgres.
type InMemoryRepository struct {
	mu      sync.Mutex
	options map[int]FlavorOption
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		options: make(map[int]FlavorOption),
		nextID:  1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, option *FlavorOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	option.ID = r.nextID
	r.nextID++
	r.options[option.ID] = *option
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, option *FlavorOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.options[option.ID]; !ok {
		return fmt.Errorf("flavor option %d: %w", option.ID, apperr.ErrNotFound)
	}
	r.options[option.ID] = *option
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.options, id)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]FlavorOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]FlavorOption, 0, len(r.options))
	for _, o := range r.options {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) FindByText(ctx context.Context, text string) (*FlavorOption, error) {
	options, _ := r.List(ctx)
	for _, o := range options {
		if o.Text == text {
			found := o
			return &found, nil
		}
	}
	return nil, fmt.Errorf("flavor option %q: %w", text, apperr.ErrNotFound)
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.options), nil
}

func (r *InMemoryRepository) ReplaceAll(ctx context.Context, options []FlavorOption) error {
	r.mu.Lock()
	r.options = make(map[int]FlavorOption)
	r.nextID = 1
	r.mu.Unlock()

	for _, o := range options {
		o := o
		if err := r.Create(ctx, &o); err != nil {
			return err
		}
	}
	return nil
}
