package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst_NilPassesThrough(t *testing.T) {
	assert.NoError(t, First(nil, "email"))
}

func TestFirst_PicksDeclaredOrder(t *testing.T) {
	errs := validation.Errors{
		"password": errors.New("can't be blank"),
		"email":    errors.New("is invalid"),
	}

	err := First(errs, "email", "username", "password")

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "email", fieldErr.Field)
	assert.Equal(t, "is invalid", fieldErr.Message)
}

func TestFirst_SkipsCleanFields(t *testing.T) {
	errs := validation.Errors{
		"password": errors.New("can't be blank"),
	}

	err := First(errs, "email", "username", "password")

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "password", fieldErr.Field)
}

func TestFirst_NonValidationErrorUntouched(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, plain, First(plain, "email"))
}

func TestFieldError_Message(t *testing.T) {
	err := &FieldError{Field: "title", Message: "can't be blank"}
	assert.Equal(t, "title can't be blank", err.Error())
}
