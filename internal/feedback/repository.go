package feedback

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Entry, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	CountByStatus(ctx context.Context, status Status) (int, error)
}
