package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/profile"
	"conduit-backend/internal/domains/user"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/logger"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns a public profile with the viewer-relative following
// flag. Works for anonymous viewers.
// GET /api/profiles/:username
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	resp, err := h.profileService.Get(c.Request.Context(), middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile.ProfileEnvelope{Profile: *resp})
}

// Follow records viewer -> username.
// POST /api/profiles/:username/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	resp, err := h.profileService.Follow(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile.ProfileEnvelope{Profile: *resp})
}

// Unfollow removes viewer -> username.
// DELETE /api/profiles/:username/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	resp, err := h.profileService.Unfollow(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile.ProfileEnvelope{Profile: *resp})
}

func (h *ProfileHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, profile.ErrSelfFollow):
		response.Forbidden(c, "cannot follow yourself")
	default:
		logger.Error("profile handler failure", err)
		response.InternalServerError(c)
	}
}
