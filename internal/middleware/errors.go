package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerpulse/internal/domain/dto"
	"github.com/guttosm/tickerpulse/internal/logger"
)

// ErrorHandler is a terminal safety net for errors attached to the Gin
// context that no handler translated into a response. It logs them and, if
// nothing was written yet, answers with a generic 500 body.
//
// Handlers that know their error's kind should respond themselves (or use
// AbortWithError); this middleware only catches what slipped through.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	rid, _ := c.Get(RequestIDKey)
	for _, e := range c.Errors {
		logger.L().Error().
			Str("request_id", toString(rid)).
			Err(e.Err).
			Msg("request_error")
	}

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Unexpected error", nil))
}

// AbortWithError records the underlying error on the context for logging and
// aborts the request with a JSON error body carrying the given message.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
