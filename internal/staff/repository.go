package staff

import "context"

// Repository defines the data-access contract for servers.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, server *Server) error
	Update(ctx context.Context, server *Server) error
	List(ctx context.Context) ([]Server, error)
	FindByName(ctx context.Context, name string) (*Server, error)

	// Delete removes the server, its generated-review rows and detaches its
	// internal feedback in one transaction. Unknown ids are a no-op.
	Delete(ctx context.Context, id int) error
}
