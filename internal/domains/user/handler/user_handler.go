package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/user"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
	"conduit-backend/internal/shared/validate"
	"conduit-backend/pkg/logger"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new account.
// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var payload user.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), payload.User)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.UserEnvelope{User: *resp})
}

// Login exchanges credentials for a token.
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var payload user.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), payload.User)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.UserEnvelope{User: *resp})
}

// CurrentUser returns the authenticated user.
// GET /api/user
func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	resp, err := h.userService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.UserEnvelope{User: *resp})
}

// UpdateUser partially updates the authenticated user.
// PUT /api/user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	var payload user.UpdateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.userService.UpdateUser(c.Request.Context(), userID, payload.User)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.UserEnvelope{User: *resp})
}

func (h *UserHandler) mapError(c *gin.Context, err error) {
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.Unprocessable(c, fieldErr.Field, fieldErr.Message)
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "email already taken")
	case errors.Is(err, user.ErrUsernameAlreadyExists):
		response.Conflict(c, "username already taken")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	default:
		logger.Error("user handler failure", err)
		response.InternalServerError(c)
	}
}
