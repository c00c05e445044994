package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// HandleAPIError writes err as a plain-text response. The status follows the
// error's sentinel; unknown errors become 500 and are only detailed in the log.
func HandleAPIError(c *gin.Context, err error) {
	status, fallback := http.StatusInternalServerError, apperrors.MsgInternal

	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		status, fallback = http.StatusBadRequest, apperrors.MsgMissingFields
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status, fallback = http.StatusUnauthorized, apperrors.MsgInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenInvalid):
		status, fallback = http.StatusForbidden, apperrors.MsgInvalidToken
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status, fallback = http.StatusForbidden, apperrors.MsgNoPermission
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, fallback = http.StatusNotFound, "Not found"
	case errors.Is(err, apperrors.ErrConflict):
		status, fallback = http.StatusConflict, apperrors.MsgAlreadyExists
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
		c.String(status, apperrors.MsgInternal)
		return
	}

	c.String(status, apperrors.Message(err, fallback))
}

// Recovery turns panics into 500 responses and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				if !c.Writer.Written() {
					c.String(http.StatusInternalServerError, apperrors.MsgInternal)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
