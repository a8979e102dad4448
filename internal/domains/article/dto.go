package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"conduit-backend/internal/shared/validate"
)

type CreateArticlePayload struct {
	Article CreateArticleRequest `json:"article"`
}

type CreateArticleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

func (r CreateArticleRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("can't be blank")),
		validation.Field(&r.Description, validation.Required.Error("can't be blank")),
		validation.Field(&r.Body, validation.Required.Error("can't be blank")),
	)
	return validate.First(err, "title", "description", "body")
}

type UpdateArticlePayload struct {
	Article UpdateArticleRequest `json:"article"`
}

// UpdateArticleRequest is a partial update; absent fields keep their
// stored values. A text field that is present must still be non-empty; a
// present tag list replaces the stored one, even when empty.
type UpdateArticleRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	TagList     *[]string `json:"tagList"`
}

func (r UpdateArticleRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil,
			validation.Required.Error("can't be blank"))),
		validation.Field(&r.Description, validation.When(r.Description != nil,
			validation.Required.Error("can't be blank"))),
		validation.Field(&r.Body, validation.When(r.Body != nil,
			validation.Required.Error("can't be blank"))),
	)
	return validate.First(err, "title", "description", "body")
}

type ArticleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

type ArticlesEnvelope struct {
	Articles      []ArticleResponse `json:"articles"`
	ArticlesCount int               `json:"articlesCount"`
}

type AuthorResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type ArticleResponse struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Body           string         `json:"body"`
	TagList        []string       `json:"tagList"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Favorited      bool           `json:"favorited"`
	FavoritesCount int            `json:"favoritesCount"`
	Author         AuthorResponse `json:"author"`
}

// NewArticleResponse projects an article for a viewer. It only inspects
// the relations already loaded on the model, so callers get identical
// output for identical inputs. A nil viewer gets favorited=false and
// following=false.
func NewArticleResponse(a *Article, viewerID *int64) ArticleResponse {
	tagList := a.TagList
	if tagList == nil {
		tagList = []string{}
	}

	return ArticleResponse{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tagList,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Favorited:      containsID(a.FavoritedBy, viewerID),
		FavoritesCount: len(a.FavoritedBy),
		Author: AuthorResponse{
			Username:  a.Author.Username,
			Bio:       a.Author.Bio,
			Image:     a.Author.Image,
			Following: containsID(a.Author.FollowerIDs, viewerID),
		},
	}
}

func NewArticlesEnvelope(articles []*Article, viewerID *int64) ArticlesEnvelope {
	responses := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		responses = append(responses, NewArticleResponse(a, viewerID))
	}
	return ArticlesEnvelope{
		Articles:      responses,
		ArticlesCount: len(responses),
	}
}

func containsID(ids []int64, viewerID *int64) bool {
	if viewerID == nil {
		return false
	}
	for _, id := range ids {
		if id == *viewerID {
			return true
		}
	}
	return false
}
