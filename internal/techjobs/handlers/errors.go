package handlers

import (
	"errors"
	"net/http"

	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internal error details from callers.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// renderError renders the error page for err. Unexpected errors are logged.
func renderError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Internal server error",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.HTML(status, "error", gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": publicMessage(err, status),
	})
}

// notFound renders the 404 page for a malformed or unknown id.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"title":   http.StatusText(http.StatusNotFound),
		"status":  http.StatusNotFound,
		"message": "not found",
	})
}

// jsonError writes err as {"error": ..., "fields": ...}.
func jsonError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	body := gin.H{"error": publicMessage(err, status)}

	var fields e.FieldErrors
	if errors.As(err, &fields) {
		body["fields"] = fields
	}
	if status == http.StatusInternalServerError {
		logger.Error("Internal server error",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// fieldErrors extracts per-field messages for re-rendering a form.
func fieldErrors(err error) (e.FieldErrors, bool) {
	var fields e.FieldErrors
	if errors.As(err, &fields) {
		return fields, true
	}
	return nil, false
}
