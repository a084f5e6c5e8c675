package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

const defaultRecentLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single queued activity event.
func (s *activityService) Process(ctx context.Context, event ports.ActivityEvent) error {
	entry := &domain.Activity{
		Action:    event.Action,
		PostID:    event.PostID,
		ActorID:   event.ActorID,
		Timestamp: event.Timestamp,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("action", string(event.Action)).
		Str("post_id", event.PostID).
		Msg("activity recorded")
	return nil
}

// Recent returns the newest audit entries, most recent first.
func (s *activityService) Recent(ctx context.Context, callerID string, limit int) ([]domain.Activity, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if limit <= 0 || limit > defaultRecentLimit {
		limit = defaultRecentLimit
	}
	return s.repo.FindRecent(ctx, limit)
}
