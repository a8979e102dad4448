package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/jwt"
)

// contextUserIDKey is where the resolved viewer id lives on the gin context.
const contextUserIDKey = "userID"

// AuthRequired rejects the request with 401 before the handler runs unless a
// valid token is presented.
func AuthRequired(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			response.Unauthorized(c, "missing authorization token")
			c.Abort()
			return
		}

		userID, err := tokens.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid authorization token")
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// AuthOptional resolves the viewer when a valid token is presented and
// treats everything else (no credentials, invalid credentials) as an
// anonymous viewer. It never rejects.
func AuthOptional(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if userID, err := tokens.ValidateToken(token); err == nil {
				c.Set(contextUserIDKey, userID)
			}
		}
		c.Next()
	}
}

// extractToken pulls the JWT out of the Authorization header. Both the
// standard "Bearer" scheme and the realworld client's "Token" scheme are
// accepted.
func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return "", false
	}

	return strings.TrimSpace(parts[1]), parts[1] != ""
}

// ViewerID returns the resolved viewer id, or nil for an anonymous viewer.
func ViewerID(c *gin.Context) *int64 {
	v, exists := c.Get(contextUserIDKey)
	if !exists {
		return nil
	}
	userID, ok := v.(int64)
	if !ok {
		return nil
	}
	return &userID
}

// UserID returns the viewer id on routes behind AuthRequired.
func UserID(c *gin.Context) (int64, bool) {
	viewer := ViewerID(c)
	if viewer == nil {
		return 0, false
	}
	return *viewer, true
}
