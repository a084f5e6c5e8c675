package ports

import (
	"context"

	"github.com/quillstack/blog-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// AddToRole appends a role to the user's role set if not already present.
	AddToRole(ctx context.Context, userID, role string) error
}
