package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quillstack/blog-api/internal/api/metrics"
	"github.com/quillstack/blog-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog post operations. Domain errors
// propagate to the central error handler, which maps them to status codes.
type BlogHandler struct {
	posts    ports.PostService
	activity ports.ActivityService
}

func NewBlogHandler(posts ports.PostService, activity ports.ActivityService) *BlogHandler {
	return &BlogHandler{posts: posts, activity: activity}
}

// GetAllPosts handles GET /api/Blog/GetAllPosts.
//
// @Summary      List every stored post
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/Blog/GetAllPosts [get]
func (h *BlogHandler) GetAllPosts(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.ListAll(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// GetPostByID handles GET /api/Blog/GetPostByID?id=.
//
// @Summary      Get a post by id
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/Blog/GetPostByID [get]
func (h *BlogHandler) GetPostByID(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	post, err := h.posts.GetByID(c.Request().Context(), callerID, c.QueryParam("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(*post))
}

// GetTopXPosts handles GET /api/Blog/GetTopXPosts?X=.
//
// @Summary      Get the first X posts in id order
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        X    query     int  true  "Number of posts"
// @Success      200  {array}   postResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/Blog/GetTopXPosts [get]
func (h *BlogHandler) GetTopXPosts(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	x, err := strconv.Atoi(c.QueryParam("X"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "X must be an integer")
	}

	posts, err := h.posts.GetTop(c.Request().Context(), callerID, x)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// GetPostsByIdRange handles GET /api/Blog/GetPostsByIdRange?startId=&endId=.
//
// @Summary      Get posts whose id falls within [startId, endId]
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        startId  query     string  true  "Range start id"
// @Param        endId    query     string  true  "Range end id"
// @Success      200      {array}   postResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/Blog/GetPostsByIdRange [get]
func (h *BlogHandler) GetPostsByIdRange(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.GetByIDRange(c.Request().Context(), callerID,
		c.QueryParam("startId"), c.QueryParam("endId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// GetPostByKeywords handles GET /api/Blog/GetPostByKeywords?keywords=.
//
// @Summary      Search posts by title or content substring
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        keywords  query     string  true  "Substring to match"
// @Success      200       {array}   postResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/Blog/GetPostByKeywords [get]
func (h *BlogHandler) GetPostByKeywords(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.SearchByKeyword(c.Request().Context(), callerID, c.QueryParam("keywords"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// CreatePost handles POST /api/Blog/CreatePost. The author is always the
// caller; any author field in the payload is ignored.
//
// @Summary      Create a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/Blog/CreatePost [post]
func (h *BlogHandler) CreatePost(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.posts.Create(c.Request().Context(), callerID, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/api/Blog/GetPostByID?id="+post.ID)
	return c.JSON(http.StatusCreated, toPostResponse(*post))
}

// EditPost handles PUT /api/Blog/EditPost?id=. Only title and content are
// overwritten.
//
// @Summary      Edit a post
// @Tags         blog
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        id    query     string           true  "Post id"
// @Param        body  body      editPostRequest  true  "New title and content"
// @Success      200   {string}  string  "Edited"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/Blog/EditPost [put]
func (h *BlogHandler) EditPost(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	var req editPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.posts.Edit(c.Request().Context(), callerID, c.QueryParam("id"), req.Title, req.Content); err != nil {
		return err
	}

	metrics.PostsEditedTotal.Inc()
	return c.String(http.StatusOK, "Edited")
}

// DeletePost handles DELETE /api/Blog/DeletePost?id=.
//
// @Summary      Delete a post
// @Tags         blog
// @Produce      plain
// @Security     BearerAuth
// @Param        id   query     string  true  "Post id"
// @Success      200  {string}  string  "Deleted"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/Blog/DeletePost [delete]
func (h *BlogHandler) DeletePost(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.Request().Context(), callerID, c.QueryParam("id")); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.String(http.StatusOK, "Deleted")
}

// GetRecentActivity handles GET /api/Blog/GetRecentActivity?limit=.
//
// @Summary      List recent post activity, newest first
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50)"
// @Success      200    {array}   activityResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/Blog/GetRecentActivity [get]
func (h *BlogHandler) GetRecentActivity(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.activity.Recent(c.Request().Context(), callerID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityListResponse(entries))
}
