package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/domains/comment"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/internal/shared/validate"
	"conduit-backend/pkg/logger"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment posts a comment on the article.
// POST /api/articles/:slug/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	var payload comment.CreateCommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.commentService.Create(c.Request.Context(), viewerID, c.Param("slug"), payload.Comment)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment.CommentEnvelope{Comment: *resp})
}

// ListComments returns the article's comments, oldest first.
// GET /api/articles/:slug/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	envelope, err := h.commentService.ListByArticle(c.Request.Context(), middleware.ViewerID(c), c.Param("slug"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// DeleteComment removes the viewer's own comment.
// DELETE /api/articles/:slug/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "comment not found")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), viewerID, c.Param("slug"), commentID); err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *CommentHandler) mapError(c *gin.Context, err error) {
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.Unprocessable(c, fieldErr.Field, fieldErr.Message)
	case errors.Is(err, article.ErrArticleNotFound):
		response.NotFound(c, "article not found")
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "comment not found")
	case errors.Is(err, comment.ErrNotCommentAuthor):
		response.Forbidden(c, "you are not the author of this comment")
	default:
		logger.Error("comment handler failure", err)
		response.InternalServerError(c)
	}
}
