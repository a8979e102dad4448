package comment

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/shared/validate"
)

func TestCreateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, CreateCommentRequest{Body: "nice"}.Validate())

	err := CreateCommentRequest{}.Validate()
	var fieldErr *validate.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "body", fieldErr.Field)
}

func TestNewCommentResponse(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	cm := &Comment{
		ID:        11,
		ArticleID: 7,
		AuthorID:  1,
		Body:      "great read",
		CreatedAt: now,
		UpdatedAt: now,
		Author: Author{
			ID:          1,
			Username:    "jake",
			FollowerIDs: []int64{5},
		},
	}

	t.Run("anonymous viewer", func(t *testing.T) {
		resp := NewCommentResponse(cm, nil)
		assert.Equal(t, int64(11), resp.ID)
		assert.False(t, resp.Author.Following)
	})

	t.Run("follower viewer", func(t *testing.T) {
		viewer := int64(5)
		resp := NewCommentResponse(cm, &viewer)
		assert.True(t, resp.Author.Following)
	})

	t.Run("non-follower viewer", func(t *testing.T) {
		viewer := int64(6)
		resp := NewCommentResponse(cm, &viewer)
		assert.False(t, resp.Author.Following)
	})
}

func TestNewCommentsEnvelope_Empty(t *testing.T) {
	envelope := NewCommentsEnvelope(nil, nil)

	require.NotNil(t, envelope.Comments)
	assert.Empty(t, envelope.Comments)
}
