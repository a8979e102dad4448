package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"conduit-backend/internal/domains/article"
)

// listRecorder records the params the handler resolved from the request.
type listRecorder struct {
	article.Service
	lastList article.ListParams
}

func (r *listRecorder) List(_ context.Context, _ *int64, params article.ListParams) (*article.ArticlesEnvelope, error) {
	r.lastList = params
	return &article.ArticlesEnvelope{Articles: []article.ArticleResponse{}}, nil
}

func TestListArticles_QueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := &listRecorder{}
	router := gin.New()
	router.GET("/articles", NewArticleHandler(recorder).ListArticles)

	list := func(query string) article.ListParams {
		req := httptest.NewRequest(http.MethodGet, "/articles"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		return recorder.lastList
	}

	t.Run("absent limit is unbounded", func(t *testing.T) {
		params := list("")
		assert.Zero(t, params.Limit)
		assert.Zero(t, params.Offset)
	})

	t.Run("explicit limit and offset", func(t *testing.T) {
		params := list("?limit=5&offset=10")
		assert.Equal(t, 5, params.Limit)
		assert.Equal(t, 10, params.Offset)
	})

	t.Run("malformed limit falls back to the page size", func(t *testing.T) {
		params := list("?limit=abc")
		assert.Equal(t, defaultPageSize, params.Limit)
	})

	t.Run("negative limit falls back to the page size", func(t *testing.T) {
		params := list("?limit=-3")
		assert.Equal(t, defaultPageSize, params.Limit)
	})

	t.Run("filters pass through", func(t *testing.T) {
		params := list("?tag=go&author=jake&favorited=jane")
		assert.Equal(t, "go", params.Tag)
		assert.Equal(t, "jake", params.Author)
		assert.Equal(t, "jane", params.FavoritedBy)
	})
}
