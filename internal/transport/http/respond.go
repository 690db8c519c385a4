package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/middleware"
	"emaxplatform/internal/validation"
)

// bindPayload decodes the request body into a JSON object.
func bindPayload(c *gin.Context) (validation.Payload, error) {
	var p validation.Payload
	if err := c.ShouldBindJSON(&p); err != nil || p == nil {
		return nil, domain.Invalid(validation.CodeInvalidJSON, validation.MsgInvalidJSON)
	}
	return p, nil
}

// respondError maps err to a status and body. Client errors carry a code.
// Anything else is a 500 that echoes the store's own message; the wrapped
// chain goes to the log.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	if de, ok := domain.AsError(err); ok {
		status := http.StatusBadRequest
		if de.Kind == domain.KindNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": de.Message, "code": de.Code})
		return
	}

	log.ErrorContext(c, "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + rootCause(err).Error()})
}

// rootCause follows single-error wrapping down to the innermost error.
func rootCause(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}

// withNotFoundCode swaps the code of a not-found error. Some legacy routes
// report NOT_FOUND where their siblings use an entity-specific code.
func withNotFoundCode(err error, code string) error {
	if de, ok := domain.AsError(err); ok && de.Kind == domain.KindNotFound {
		return &domain.Error{Kind: de.Kind, Code: code, Message: de.Message}
	}
	return err
}
