package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"loadbook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	codeNotFound      = "NOT_FOUND"
	codeBusinessLogic = "BUSINESS_LOGIC_ERROR"
	codeValidation    = "VALIDATION_ERROR"
	codeConflict      = "CONFLICT"
	codeTimeout       = "TIMEOUT"
	codeInternal      = "INTERNAL_SERVER_ERROR"
)

// classify maps an error returned by a handler to its HTTP status, error code
// and client-facing message.
func classify(err error) (int, string, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeNotFound, err.Error()
	case errs.IsBusinessRule(err):
		return http.StatusBadRequest, codeBusinessLogic, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, codeValidation, flatten(err)
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, codeConflict, err.Error()
	case errors.Is(err, errs.ErrStorageTimeout):
		return http.StatusGatewayTimeout, codeTimeout, "The request timed out"
	case errors.As(err, &httpErr):
		return httpErr.Code, statusCode(httpErr.Code), fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, codeInternal, "An unexpected error occurred"
	}
}

func statusCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeValidation
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusConflict:
		return codeConflict
	case http.StatusGatewayTimeout:
		return codeTimeout
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// Joined constructor errors come out one per line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

// NewErrorHandler renders every error as an ErrorResponse. Server side
// failures are logged with their cause; client errors are not.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"error", err)
		}

		body := ErrorResponse{
			Message:   message,
			Status:    status,
			Error:     code,
			Path:      c.Request().URL.Path,
			Timestamp: time.Now().UTC(),
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
