package ports

import (
	"context"

	"github.com/quillstack/blog-api/internal/core/domain"
)

// PostService defines the use-case operations over blog posts. Every method
// takes the authenticated caller id explicitly; an empty callerID is rejected
// with domain.ErrUnauthenticated before any store access.
type PostService interface {
	ListAll(ctx context.Context, callerID string) ([]domain.Post, error)
	GetByID(ctx context.Context, callerID, id string) (*domain.Post, error)
	GetTop(ctx context.Context, callerID string, n int) ([]domain.Post, error)
	GetByIDRange(ctx context.Context, callerID, startID, endID string) ([]domain.Post, error)
	SearchByKeyword(ctx context.Context, callerID, keywords string) ([]domain.Post, error)
	Create(ctx context.Context, callerID, title, content string) (*domain.Post, error)
	Edit(ctx context.Context, callerID, id, title, content string) error
	Delete(ctx context.Context, callerID, id string) error
}
