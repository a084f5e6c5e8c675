package handler

import (
	"github.com/quillstack/blog-api/internal/core/domain"
)

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toPostListResponse(posts []domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}
	return out
}

func toActivityListResponse(entries []domain.Activity) []activityResponse {
	out := make([]activityResponse, len(entries))
	for i, a := range entries {
		out[i] = activityResponse{
			Action:    string(a.Action),
			PostID:    a.PostID,
			ActorID:   a.ActorID,
			Timestamp: a.Timestamp.UTC(),
		}
	}
	return out
}
