package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/shared/validate"
)

func firstField(t *testing.T, err error) string {
	t.Helper()
	var fieldErr *validate.FieldError
	require.True(t, errors.As(err, &fieldErr), "expected a field error, got %v", err)
	return fieldErr.Field
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Email: "jake@example.com", Username: "jake", Password: "hunter2"}
	assert.NoError(t, valid.Validate())

	t.Run("email reported before username and password", func(t *testing.T) {
		err := RegisterRequest{}.Validate()
		assert.Equal(t, "email", firstField(t, err))
	})

	t.Run("malformed email", func(t *testing.T) {
		err := RegisterRequest{Email: "not-an-email", Username: "jake", Password: "hunter2"}.Validate()
		assert.Equal(t, "email", firstField(t, err))
	})

	t.Run("missing username", func(t *testing.T) {
		err := RegisterRequest{Email: "jake@example.com", Password: "hunter2"}.Validate()
		assert.Equal(t, "username", firstField(t, err))
	})

	t.Run("missing password", func(t *testing.T) {
		err := RegisterRequest{Email: "jake@example.com", Username: "jake"}.Validate()
		assert.Equal(t, "password", firstField(t, err))
	})
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "jake@example.com", Password: "hunter2"}.Validate())

	err := LoginRequest{Password: "hunter2"}.Validate()
	assert.Equal(t, "email", firstField(t, err))

	err = LoginRequest{Email: "jake@example.com"}.Validate()
	assert.Equal(t, "password", firstField(t, err))
}

func TestUpdateUserRequestValidate(t *testing.T) {
	empty := ""
	bio := "about me"

	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, UpdateUserRequest{}.Validate())
	})

	t.Run("present email must be well formed", func(t *testing.T) {
		bad := "nope"
		err := UpdateUserRequest{Email: &bad}.Validate()
		assert.Equal(t, "email", firstField(t, err))
	})

	t.Run("present username may not be blank", func(t *testing.T) {
		err := UpdateUserRequest{Username: &empty}.Validate()
		assert.Equal(t, "username", firstField(t, err))
	})

	t.Run("bio only", func(t *testing.T) {
		assert.NoError(t, UpdateUserRequest{Bio: &bio}.Validate())
	})
}
