package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"agency-contact-backend/internal/delivery/http/response"
	"agency-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MsgUnexpected is returned for errors that are not AppErrors
const MsgUnexpected = "Ein unerwarteter Fehler ist aufgetreten. Bitte versuchen Sie es später erneut."

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(response.RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil && appErr.Code >= http.StatusInternalServerError {
				log.Error("request failed", "kind", appErr.Kind, "error", appErr.Err, "request_id", requestID)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Internal details stay in the log, the client gets a generic message
		log.Error("unexpected request error", "error", err, "request_id", requestID)
		response.Error(c, http.StatusInternalServerError, MsgUnexpected)
	}
}
