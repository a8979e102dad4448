package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Errors is the error envelope of the API: a map from the offending key to
// one or more messages. Validation failures use the field name as the key,
// every other failure uses "body".
//
//	{"errors": {"title": ["can't be blank"]}}
type Errors struct {
	Errors map[string][]string `json:"errors"`
}

func Err(c *gin.Context, statusCode int, key, message string) {
	c.JSON(statusCode, Errors{
		Errors: map[string][]string{key: {message}},
	})
}

// Unprocessable reports a validation failure keyed by the offending field.
func Unprocessable(c *gin.Context, field, message string) {
	Err(c, http.StatusUnprocessableEntity, field, message)
}

func Unauthorized(c *gin.Context, message string) {
	Err(c, http.StatusUnauthorized, "body", message)
}

func Forbidden(c *gin.Context, message string) {
	Err(c, http.StatusForbidden, "body", message)
}

func NotFound(c *gin.Context, message string) {
	Err(c, http.StatusNotFound, "body", message)
}

func Conflict(c *gin.Context, message string) {
	Err(c, http.StatusConflict, "body", message)
}

// InternalServerError deliberately carries no detail about the failure.
func InternalServerError(c *gin.Context) {
	Err(c, http.StatusInternalServerError, "body", "internal server error")
}

func BadRequest(c *gin.Context, message string) {
	Err(c, http.StatusBadRequest, "body", message)
}
