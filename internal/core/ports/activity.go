package ports

import (
	"context"
	"time"

	"github.com/quillstack/blog-api/internal/core/domain"
)

// ActivityEvent is the DTO handed from the service layer to the async
// activity pipeline.
type ActivityEvent struct {
	Action    domain.ActivityAction
	PostID    string
	ActorID   string
	Timestamp time.Time
}

// ActivityRepository persists audit-trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// FindRecent returns the newest limit entries, most recent first.
	FindRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ActivityService processes queued activity events and serves the recent feed.
type ActivityService interface {
	Process(ctx context.Context, event ActivityEvent) error
	Recent(ctx context.Context, callerID string, limit int) ([]domain.Activity, error)
}
