package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

// PostCache abstracts the read-through cache for the full post list (Redis).
type PostCache interface {
	GetAll(ctx context.Context) ([]domain.Post, bool, error)
	SetAll(ctx context.Context, posts []domain.Post) error
	Invalidate(ctx context.Context) error
}

// ActivityRecorder enqueues an audit event without blocking the request.
type ActivityRecorder interface {
	Record(event ports.ActivityEvent)
}

// PostService implements the blog use cases. Authentication is a full-record
// gate: a non-empty callerID is required on every call, but reads and writes
// are not scoped to the caller's own posts.
type PostService struct {
	repo     ports.PostRepository
	cache    PostCache
	recorder ActivityRecorder
	logger   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, cache PostCache, recorder ActivityRecorder, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, cache: cache, recorder: recorder, logger: logger}
}

func (s *PostService) ListAll(ctx context.Context, callerID string) ([]domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	if posts, hit, err := s.cache.GetAll(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("post cache read failed, falling back to store")
	} else if hit {
		return posts, nil
	}

	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetAll(ctx, posts); err != nil {
		s.logger.Warn().Err(err).Msg("post cache write failed")
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, callerID, id string) (*domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) GetTop(ctx context.Context, callerID string, n int) ([]domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if n <= 0 {
		return []domain.Post{}, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if int64(n) > total {
		return nil, domain.ErrNotEnoughPosts
	}
	return s.repo.FindTop(ctx, n)
}

func (s *PostService) GetByIDRange(ctx context.Context, callerID, startID, endID string) ([]domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	// Post ids are fixed-width hex, so lexical order is the natural order.
	// Hex parsing downstream accepts both cases; lowercase first so the
	// comparison agrees with the store's byte ordering.
	if strings.Compare(strings.ToLower(startID), strings.ToLower(endID)) > 0 {
		return nil, domain.ErrInvalidRange
	}

	posts, err := s.repo.FindByIDRange(ctx, startID, endID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return posts, nil
}

func (s *PostService) SearchByKeyword(ctx context.Context, callerID, keywords string) ([]domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if keywords == "" {
		return nil, domain.ErrEmptyKeywords
	}

	posts, err := s.repo.SearchKeyword(ctx, keywords)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return posts, nil
}

// Create persists a new post authored by the caller. The author id always
// comes from the validated token, never from the request body.
func (s *PostService) Create(ctx context.Context, callerID, title, content string) (*domain.Post, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", callerID).Msg("failed to create post")
		return nil, err
	}

	s.invalidateCache(ctx)
	s.recorder.Record(ports.ActivityEvent{
		Action:    domain.ActivityCreated,
		PostID:    created.ID,
		ActorID:   callerID,
		Timestamp: now,
	})

	s.logger.Info().Str("post_id", created.ID).Str("author_id", callerID).Msg("post created")
	return created, nil
}

// Edit overwrites title and content of an existing post. Author and creation
// timestamp are never touched.
func (s *PostService) Edit(ctx context.Context, callerID, id, title, content string) error {
	if callerID == "" {
		return domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateContent(ctx, id, title, content, now); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.recorder.Record(ports.ActivityEvent{
		Action:    domain.ActivityEdited,
		PostID:    id,
		ActorID:   callerID,
		Timestamp: now,
	})

	s.logger.Info().Str("post_id", id).Str("actor_id", callerID).Msg("post edited")
	return nil
}

func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	if callerID == "" {
		return domain.ErrUnauthenticated
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.recorder.Record(ports.ActivityEvent{
		Action:    domain.ActivityDeleted,
		PostID:    id,
		ActorID:   callerID,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("post_id", id).Str("actor_id", callerID).Msg("post deleted")
	return nil
}

func (s *PostService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("post cache invalidation failed")
	}
}
