package ports

import (
	"context"
	"time"

	"github.com/quillstack/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	// Insert persists a new post and returns it with its generated id.
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns every stored post in id order.
	FindAll(ctx context.Context) ([]domain.Post, error)
	// FindTop returns the first n posts in id order.
	FindTop(ctx context.Context, n int) ([]domain.Post, error)
	// FindByIDRange returns posts whose id is within [startID, endID] inclusive
	// under the id's natural ordering.
	FindByIDRange(ctx context.Context, startID, endID string) ([]domain.Post, error)
	// SearchKeyword returns posts whose title or content contains the
	// substring. Matching is case-sensitive.
	SearchKeyword(ctx context.Context, keyword string) ([]domain.Post, error)
	// UpdateContent overwrites title and content only.
	UpdateContent(ctx context.Context, id, title, content string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
