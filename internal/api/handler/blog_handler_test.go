package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

// stubPostService records which use case ran and with what caller id.
type stubPostService struct {
	calls    int
	callerID string
	posts    []domain.Post
	err      error
}

func (s *stubPostService) ListAll(_ context.Context, callerID string) ([]domain.Post, error) {
	s.calls++
	s.callerID = callerID
	return s.posts, s.err
}

func (s *stubPostService) GetByID(_ context.Context, callerID, _ string) (*domain.Post, error) {
	s.calls++
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	return &s.posts[0], nil
}

func (s *stubPostService) GetTop(_ context.Context, callerID string, n int) ([]domain.Post, error) {
	s.calls++
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	return s.posts[:n], nil
}

func (s *stubPostService) GetByIDRange(_ context.Context, callerID, _, _ string) ([]domain.Post, error) {
	s.calls++
	s.callerID = callerID
	return s.posts, s.err
}

func (s *stubPostService) SearchByKeyword(_ context.Context, callerID, _ string) ([]domain.Post, error) {
	s.calls++
	s.callerID = callerID
	return s.posts, s.err
}

func (s *stubPostService) Create(_ context.Context, callerID, title, content string) (*domain.Post, error) {
	s.calls++
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	now := time.Now().UTC()
	return &domain.Post{
		ID:        "0123456789abcdef01234567",
		Title:     title,
		Content:   content,
		AuthorID:  callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *stubPostService) Edit(_ context.Context, callerID, _, _, _ string) error {
	s.calls++
	s.callerID = callerID
	return s.err
}

func (s *stubPostService) Delete(_ context.Context, callerID, _ string) error {
	s.calls++
	s.callerID = callerID
	return s.err
}

type stubActivityService struct {
	entries []domain.Activity
}

func (s *stubActivityService) Process(_ context.Context, _ ports.ActivityEvent) error {
	return nil
}

func (s *stubActivityService) Recent(_ context.Context, callerID string, _ int) ([]domain.Activity, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.entries, nil
}

func newBlogTestContext(t *testing.T, method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestBlogHandler_RejectsMissingCaller(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	e, c, rec := newBlogTestContext(t, http.MethodGet, "/api/Blog/GetAllPosts", "")
	if err := h.GetAllPosts(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be called without a caller id")
	}
}

func TestBlogHandler_GetAllPosts(t *testing.T) {
	svc := &stubPostService{posts: []domain.Post{{ID: "a", Title: "t"}}}
	h := NewBlogHandler(svc, &stubActivityService{})

	_, c, rec := newBlogTestContext(t, http.MethodGet, "/api/Blog/GetAllPosts", "")
	c.Set("user_id", "caller-1")

	if err := h.GetAllPosts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.callerID != "caller-1" {
		t.Fatalf("caller id not forwarded, got %q", svc.callerID)
	}
}

func TestBlogHandler_GetTopXPosts_NonInteger(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	e, c, rec := newBlogTestContext(t, http.MethodGet, "/api/Blog/GetTopXPosts?X=abc", "")
	c.Set("user_id", "caller-1")

	if err := h.GetTopXPosts(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be called for malformed X")
	}
}

func TestBlogHandler_CreatePost(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	_, c, rec := newBlogTestContext(t, http.MethodPost, "/api/Blog/CreatePost", `{"title":"hello","content":"world"}`)
	c.Set("user_id", "caller-1")

	if err := h.CreatePost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	loc := rec.Header().Get(echo.HeaderLocation)
	if !strings.Contains(loc, "/api/Blog/GetPostByID?id=") {
		t.Fatalf("expected Location reference to GetPostByID, got %q", loc)
	}
}

func TestBlogHandler_CreatePost_MissingTitle(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	e, c, rec := newBlogTestContext(t, http.MethodPost, "/api/Blog/CreatePost", `{"content":"world"}`)
	c.Set("user_id", "caller-1")

	if err := h.CreatePost(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be called for invalid payload")
	}
}

func TestBlogHandler_EditPost(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	_, c, rec := newBlogTestContext(t, http.MethodPut, "/api/Blog/EditPost?id=abc", `{"title":"x","content":"y"}`)
	c.Set("user_id", "caller-1")

	if err := h.EditPost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "Edited" {
		t.Fatalf("expected 200 Edited, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestBlogHandler_DeletePost(t *testing.T) {
	svc := &stubPostService{}
	h := NewBlogHandler(svc, &stubActivityService{})

	_, c, rec := newBlogTestContext(t, http.MethodDelete, "/api/Blog/DeletePost?id=abc", "")
	c.Set("user_id", "caller-1")

	if err := h.DeletePost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "Deleted" {
		t.Fatalf("expected 200 Deleted, got %d %q", rec.Code, rec.Body.String())
	}
}
