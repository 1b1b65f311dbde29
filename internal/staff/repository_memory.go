package staff

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

// InMemoryRepository keeps servers in a map. Dependents are tracked through
// the optional OnDelete hook so tests can observe the cascade.
type InMemoryRepository struct {
	mu      sync.Mutex
	servers map[int]Server
	nextID  int

	OnDelete func(server Server)
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		servers: make(map[int]Server),
		nextID:  1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, server *Server) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(server.Name, 0) {
		return fmt.Errorf("server %q: %w", server.Name, apperr.ErrConflict)
	}

	server.ID = r.nextID
	r.nextID++
	r.servers[server.ID] = *server
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, server *Server) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.servers[server.ID]; !ok {
		return fmt.Errorf("server %d: %w", server.ID, apperr.ErrNotFound)
	}
	if r.nameTaken(server.Name, server.ID) {
		return fmt.Errorf("server %q: %w", server.Name, apperr.ErrConflict)
	}

	r.servers[server.ID] = *server
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Server, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Server, 0, len(r.servers))
	for _, s := range r.servers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) FindByName(ctx context.Context, name string) (*Server, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.servers {
		if s.Name == name {
			found := s
			return &found, nil
		}
	}
	return nil, fmt.Errorf("server %q: %w", name, apperr.ErrNotFound)
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	s, ok := r.servers[id]
	delete(r.servers, id)
	hook := r.OnDelete
	r.mu.Unlock()

	if ok && hook != nil {
		hook(s)
	}
	return nil
}

func (r *InMemoryRepository) nameTaken(name string, exceptID int) bool {
	for id, s := range r.servers {
		if id != exceptID && s.Name == name {
			return true
		}
	}
	return false
}
