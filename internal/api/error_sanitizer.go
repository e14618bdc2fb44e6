package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/pkg/logger"
)

// =============================================================================
// ERROR SANITIZER
// Service errors carry a kind (domain.ErrNotFound and friends) that decides
// the status code. Anything without a kind is an internal failure: it is
// logged in full and the client gets a generic message.
// =============================================================================

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondErr writes the response for an error returned by a service.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		respondSafeError(w, r, code, err)
		return
	}
	httputil.Error(w, code, publicDetail(err))
}

// publicDetail returns the client-facing message of a classified error.
func publicDetail(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Detail
	}
	return err.Error()
}

// respondSafeError logs the full internal error and sends a sanitized JSON
// error response to the client.
func respondSafeError(w http.ResponseWriter, r *http.Request, code int, internalErr error) {
	logger.Error("request failed",
		"status", code,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", internalErr,
	)
	httputil.Error(w, code, safeErrorMessage(code, internalErr))
}

// safeErrorMessage maps common internal error patterns to public-safe messages.
// For 400-level errors, the original message is typically fine (user input issues).
// For 500-level errors, this returns a generic safe message.
func safeErrorMessage(code int, internalErr error) string {
	if code < 500 {
		if internalErr != nil {
			return publicDetail(internalErr)
		}
		return "Bad request"
	}

	if internalErr == nil {
		return "Internal server error"
	}

	errStr := strings.ToLower(internalErr.Error())

	switch {
	case strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "dial tcp"):
		return "Service temporarily unavailable"

	case strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") ||
		strings.Contains(errStr, "context canceled"):
		return "Request timed out"

	case strings.Contains(errStr, "sql") ||
		strings.Contains(errStr, "pq:") ||
		strings.Contains(errStr, "query") ||
		strings.Contains(errStr, "scan") ||
		strings.Contains(errStr, "transaction") ||
		strings.Contains(errStr, "database"):
		return "A database error occurred"

	default:
		return "Internal server error"
	}
}
