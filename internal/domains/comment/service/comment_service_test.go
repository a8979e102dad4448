package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/domains/article"
	"conduit-backend/internal/domains/comment"
)

type fakeArticleRepo struct {
	bySlug map[string]*article.Article
}

func (f *fakeArticleRepo) Create(_ context.Context, _ *article.Article) error { return nil }
func (f *fakeArticleRepo) FindBySlug(_ context.Context, slug string) (*article.Article, error) {
	a, ok := f.bySlug[slug]
	if !ok {
		return nil, article.ErrArticleNotFound
	}
	return a, nil
}
func (f *fakeArticleRepo) List(_ context.Context, _ *article.Filter) ([]*article.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) Update(_ context.Context, _ *article.Article) error { return nil }
func (f *fakeArticleRepo) Delete(_ context.Context, _ int64) error            { return nil }
func (f *fakeArticleRepo) Favorite(_ context.Context, _, _ int64) error       { return nil }
func (f *fakeArticleRepo) Unfavorite(_ context.Context, _, _ int64) error     { return nil }

type fakeCommentRepo struct {
	byID   map[int64]*comment.Comment
	nextID int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{byID: make(map[int64]*comment.Comment), nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, cm *comment.Comment) error {
	cm.ID = f.nextID
	f.nextID++
	f.byID[cm.ID] = cm
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id int64) (*comment.Comment, error) {
	cm, ok := f.byID[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return cm, nil
}

func (f *fakeCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]*comment.Comment, error) {
	out := make([]*comment.Comment, 0)
	for _, cm := range f.byID {
		if cm.ArticleID == articleID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(f.byID, id)
	return nil
}

func newService() (comment.Service, *fakeCommentRepo) {
	comments := newFakeCommentRepo()
	articles := &fakeArticleRepo{bySlug: map[string]*article.Article{
		"first-post":  {ID: 1, AuthorID: 1, Slug: "first-post"},
		"second-post": {ID: 2, AuthorID: 1, Slug: "second-post"},
	}}
	return NewCommentService(comments, articles), comments
}

func TestCreateComment(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, 5, "first-post", comment.CreateCommentRequest{Body: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "nice", resp.Body)

	t.Run("unknown article", func(t *testing.T) {
		_, err := svc.Create(ctx, 5, "missing", comment.CreateCommentRequest{Body: "nice"})
		assert.ErrorIs(t, err, article.ErrArticleNotFound)
	})

	t.Run("blank body", func(t *testing.T) {
		_, err := svc.Create(ctx, 5, "first-post", comment.CreateCommentRequest{})
		assert.Error(t, err)
	})
}

func TestDeleteComment(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, 5, "first-post", comment.CreateCommentRequest{Body: "mine"})
	require.NoError(t, err)

	t.Run("non-author is rejected", func(t *testing.T) {
		err := svc.Delete(ctx, 6, "first-post", resp.ID)
		assert.ErrorIs(t, err, comment.ErrNotCommentAuthor)
	})

	t.Run("wrong article slug hides the comment", func(t *testing.T) {
		err := svc.Delete(ctx, 5, "second-post", resp.ID)
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, 5, "first-post", resp.ID))
		_, err := repo.FindByID(ctx, resp.ID)
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)
	})
}
