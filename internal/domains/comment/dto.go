package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"conduit-backend/internal/shared/validate"
)

type CreateCommentPayload struct {
	Comment CreateCommentRequest `json:"comment"`
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required.Error("can't be blank")),
	)
	return validate.First(err, "body")
}

type CommentEnvelope struct {
	Comment CommentResponse `json:"comment"`
}

type CommentsEnvelope struct {
	Comments []CommentResponse `json:"comments"`
}

type AuthorResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type CommentResponse struct {
	ID        int64          `json:"id"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Author    AuthorResponse `json:"author"`
}

// NewCommentResponse projects a comment for a viewer using only the
// relations already loaded on the model.
func NewCommentResponse(cm *Comment, viewerID *int64) CommentResponse {
	following := false
	if viewerID != nil {
		for _, id := range cm.Author.FollowerIDs {
			if id == *viewerID {
				following = true
				break
			}
		}
	}

	return CommentResponse{
		ID:        cm.ID,
		Body:      cm.Body,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
		Author: AuthorResponse{
			Username:  cm.Author.Username,
			Bio:       cm.Author.Bio,
			Image:     cm.Author.Image,
			Following: following,
		},
	}
}

func NewCommentsEnvelope(comments []*Comment, viewerID *int64) CommentsEnvelope {
	responses := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		responses = append(responses, NewCommentResponse(cm, viewerID))
	}
	return CommentsEnvelope{Comments: responses}
}
