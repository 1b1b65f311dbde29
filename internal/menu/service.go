package menu

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

// --------------------------------------------------
// Create dish
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, text, category string) (*FlavorOption, error) {
	option, err := normalize(text, category)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// --------------------------------------------------
// Update dish
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id int, text, category string) (*FlavorOption, error) {
	option, err := normalize(text, category)
	if err != nil {
		return nil, err
	}
	option.ID = id

	if err := s.repo.Update(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// Delete removes a dish. Past selections keep their denormalized name.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]FlavorOption, error) {
	return s.repo.List(ctx)
}

// Grouped returns the menu grouped by category in first-occurrence order.
func (s *Service) Grouped(ctx context.Context) (Groups, error) {
	options, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(options), nil
}

// FindByText resolves a dish tag by exact text match.
func (s *Service) FindByText(ctx context.Context, text string) (*FlavorOption, error) {
	return s.repo.FindByText(ctx, text)
}

func normalize(text, category string) (*FlavorOption, error) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)

	if text == "" || category == "" {
		return nil, fmt.Errorf("%w: text and category are required", apperr.ErrInvalidInput)
	}

	return &FlavorOption{Text: text, Category: category}, nil
}
