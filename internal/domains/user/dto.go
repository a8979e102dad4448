package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"conduit-backend/internal/shared/validate"
)

// Every payload and response of this API is wrapped in a "user" envelope,
// matching the realworld wire format.

// ========================================
// REQUEST DTOs
// ========================================

type RegisterPayload struct {
	User RegisterRequest `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("can't be blank"),
			is.Email.Error("is invalid"),
		),
		validation.Field(&r.Username,
			validation.Required.Error("can't be blank"),
			validation.Length(1, 64).Error("must be at most 64 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("can't be blank"),
		),
	)
	return validate.First(err, "email", "username", "password")
}

type LoginPayload struct {
	User LoginRequest `json:"user"`
}

// LoginRequest ignores username entirely; only email and password matter.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("can't be blank")),
		validation.Field(&r.Password, validation.Required.Error("can't be blank")),
	)
	return validate.First(err, "email", "password")
}

type UpdateUserPayload struct {
	User UpdateUserRequest `json:"user"`
}

// UpdateUserRequest is partial: a nil field means "leave unchanged".
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

func (r UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email.Error("is invalid")),
		),
		validation.Field(&r.Username,
			validation.When(r.Username != nil,
				validation.Required.Error("can't be blank"),
				validation.Length(1, 64).Error("must be at most 64 characters"),
			),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != nil, validation.Required.Error("can't be blank")),
		),
	)
	return validate.First(err, "email", "username", "password")
}

// ========================================
// RESPONSE DTOs
// ========================================

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

func NewUserResponse(u *User, token string) UserResponse {
	return UserResponse{
		Email:    u.Email,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
}
