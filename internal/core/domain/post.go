package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrInvalidPostID = errors.New("invalid post id")
var ErrInvalidRange = errors.New("invalid range: startId should be less than or equal to endId")
var ErrNotEnoughPosts = errors.New("fewer posts than requested")
var ErrEmptyKeywords = errors.New("keywords cannot be empty")
var ErrUnauthenticated = errors.New("user is not authenticated")

// Post is the core aggregate. IDs are lexically sortable hex strings, so the
// natural ordering used by range queries is the insertion order.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
