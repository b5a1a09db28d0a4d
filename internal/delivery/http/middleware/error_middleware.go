package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/pkg/apperror"
)

// ErrorHandler maps errors attached to the context onto the response
// envelope. AppError carries its own status and safe message; anything
// else is logged and answered with a generic 500 so internals never
// leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		slog.Error("unhandled request error",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
