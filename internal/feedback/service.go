package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns feedback newest first. An unknown status filter is rejected
// rather than silently matching nothing.
func (s *Service) List(ctx context.Context, filter Filter) ([]Entry, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves a note to any status of the enum.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) CountNew(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusNew)
}
