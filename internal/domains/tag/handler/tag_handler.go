package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/tag"
	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/logger"
)

type TagHandler struct {
	tagService tag.Service
}

func NewTagHandler(tagService tag.Service) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags returns every tag ever used, sorted by name.
// GET /api/tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		logger.Error("tag handler failure", err)
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, tag.TagsEnvelope{Tags: tags})
}
