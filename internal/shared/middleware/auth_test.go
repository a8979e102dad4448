package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/pkg/jwt"
)

func testRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.NewManager("test-secret", time.Hour)
	router := gin.New()

	router.GET("/required", AuthRequired(tokens), func(c *gin.Context) {
		userID, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/optional", AuthOptional(tokens), func(c *gin.Context) {
		if viewer := ViewerID(c); viewer != nil {
			c.JSON(http.StatusOK, gin.H{"viewer": *viewer})
			return
		}
		c.JSON(http.StatusOK, gin.H{"viewer": nil})
	})

	return router, tokens
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	router, tokens := testRouter(t)

	token, err := tokens.GenerateToken(42)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(router, "/required", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"errors":{"body":["missing authorization token"]}}`, rec.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := doRequest(router, "/required", "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doRequest(router, "/required", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer scheme", func(t *testing.T) {
		rec := doRequest(router, "/required", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":42}`, rec.Body.String())
	})

	t.Run("token scheme", func(t *testing.T) {
		rec := doRequest(router, "/required", "Token "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthOptional(t *testing.T) {
	router, tokens := testRouter(t)

	token, err := tokens.GenerateToken(7)
	require.NoError(t, err)

	t.Run("no credentials is anonymous", func(t *testing.T) {
		rec := doRequest(router, "/optional", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"viewer":null}`, rec.Body.String())
	})

	t.Run("invalid token is anonymous, not rejected", func(t *testing.T) {
		rec := doRequest(router, "/optional", "Bearer garbage")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"viewer":null}`, rec.Body.String())
	})

	t.Run("valid token resolves viewer", func(t *testing.T) {
		rec := doRequest(router, "/optional", "Token "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"viewer":7}`, rec.Body.String())
	})
}
