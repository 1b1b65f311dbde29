package staff

import (
	"context"
	"fmt"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a server. The name is normalized before the uniqueness check.
func (s *Service) Create(ctx context.Context, name string) (*Server, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: server name is required", apperr.ErrInvalidInput)
	}

	server := &Server{Name: name}
	if err := s.repo.Create(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

// Update renames a server. Past generated reviews keep the old name.
func (s *Service) Update(ctx context.Context, id int, name string) (*Server, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: server name is required", apperr.ErrInvalidInput)
	}

	server := &Server{ID: id, Name: name}
	if err := s.repo.Update(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Server, error) {
	return s.repo.List(ctx)
}

// FindByName looks a server up by its exact stored name.
func (s *Service) FindByName(ctx context.Context, name string) (*Server, error) {
	return s.repo.FindByName(ctx, name)
}
