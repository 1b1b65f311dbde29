package menu

import "context"

// Repository defines all database operations for menu items.
// Lookups of a missing id or text return an error wrapping apperr.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, option *FlavorOption) error
	Update(ctx context.Context, option *FlavorOption) error
	Delete(ctx context.Context, id int) error

	// List returns every option ordered by id.
	List(ctx context.Context) ([]FlavorOption, error)
	FindByText(ctx context.Context, text string) (*FlavorOption, error)
	Count(ctx context.Context) (int, error)

	// ReplaceAll swaps the whole menu in one transaction (seeding).
	ReplaceAll(ctx context.Context, options []FlavorOption) error
}
