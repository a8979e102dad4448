package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery guarantees a response is always produced, even when a handler
// panics. No internal detail reaches the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"errors": gin.H{
						"body": []string{"internal server error"},
					},
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
