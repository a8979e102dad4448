package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/internal/shared/validate"
	"conduit-backend/pkg/logger"
)

const defaultPageSize = 20

type ArticleHandler struct {
	articleService article.Service
}

func NewArticleHandler(articleService article.Service) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ListArticles returns the global listing, newest first. Listing is
// public, so relational flags are rendered for an anonymous viewer.
// GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	params := article.ListParams{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		FavoritedBy: c.Query("favorited"),
		Limit:       limitQuery(c),
		Offset:      intQuery(c, "offset", 0),
	}

	envelope, err := h.articleService.List(c.Request.Context(), nil, params)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// Feed returns articles by authors the viewer follows.
// GET /api/articles/feed
func (h *ArticleHandler) Feed(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	params := article.FeedParams{
		Limit:  limitQuery(c),
		Offset: intQuery(c, "offset", 0),
	}

	envelope, err := h.articleService.Feed(c.Request.Context(), viewerID, params)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// GetArticle returns a single article by slug.
// GET /api/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	resp, err := h.articleService.Get(c.Request.Context(), middleware.ViewerID(c), c.Param("slug"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, article.ArticleEnvelope{Article: *resp})
}

// CreateArticle publishes a new article by the viewer.
// POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	var payload article.CreateArticlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.articleService.Create(c.Request.Context(), viewerID, payload.Article)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article.ArticleEnvelope{Article: *resp})
}

// UpdateArticle partially updates the viewer's own article.
// PUT /api/articles/:slug
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	var payload article.UpdateArticlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.articleService.Update(c.Request.Context(), viewerID, c.Param("slug"), payload.Article)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, article.ArticleEnvelope{Article: *resp})
}

// DeleteArticle removes the viewer's own article.
// DELETE /api/articles/:slug
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), viewerID, c.Param("slug")); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite marks the article as favorited by the viewer. Repeats are
// harmless.
// POST /api/articles/:slug/favorite
func (h *ArticleHandler) Favorite(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	resp, err := h.articleService.Favorite(c.Request.Context(), viewerID, c.Param("slug"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, article.ArticleEnvelope{Article: *resp})
}

// Unfavorite removes the viewer's favorite mark.
// DELETE /api/articles/:slug/favorite
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	resp, err := h.articleService.Unfavorite(c.Request.Context(), viewerID, c.Param("slug"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, article.ArticleEnvelope{Article: *resp})
}

func (h *ArticleHandler) mapError(c *gin.Context, err error) {
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.Unprocessable(c, fieldErr.Field, fieldErr.Message)
	case errors.Is(err, article.ErrArticleNotFound):
		response.NotFound(c, "article not found")
	case errors.Is(err, article.ErrDuplicateSlug):
		response.Conflict(c, "article with this title already exists")
	case errors.Is(err, article.ErrNotAuthor):
		response.Forbidden(c, "you are not the author of this article")
	default:
		logger.Error("article handler failure", err)
		response.InternalServerError(c)
	}
}

// limitQuery parses the take count. An absent limit means unbounded;
// only malformed or negative values fall back to the default page size.
func limitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultPageSize
	}
	return n
}

// intQuery parses a numeric query parameter, falling back to def on
// absent or malformed values rather than failing the request.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
