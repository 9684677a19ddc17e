package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		domainerr.IsInsufficientFundsError(err),
		domainerr.IsAlreadyOwnedError(err),
		domainerr.IsVerificationError(err),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthenticated),
		errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrGatewayUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response. Messages for 5xx errors
// are generic so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "Internal server error"
		// Store outages are safe to retry; every mutation is idempotent
		// per payment id or (user, video)
		if domainerr.IsRetryable(err) {
			c.Header("Retry-After", "1")
		}
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
