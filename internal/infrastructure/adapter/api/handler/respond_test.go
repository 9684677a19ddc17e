package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
)

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "insufficient funds", err: domainerr.NewInsufficientFundsError(1, 100, 50), expected: http.StatusBadRequest},
		{name: "already owned", err: domainerr.NewAlreadyOwnedError(1, 77), expected: http.StatusBadRequest},
		{name: "verification failed", err: domainerr.ErrPaymentVerificationFailed, expected: http.StatusBadRequest},
		{name: "amount out of range", err: fmt.Errorf("%w: 5 paise", domainerr.ErrAmountOutOfRange), expected: http.StatusBadRequest},
		{name: "duplicate user", err: domainerr.ErrDuplicateUser, expected: http.StatusBadRequest},
		{name: "invalid request", err: domainerr.ErrInvalidRequest, expected: http.StatusBadRequest},
		{name: "unauthenticated", err: domainerr.ErrUnauthenticated, expected: http.StatusUnauthorized},
		{name: "invalid credentials", err: domainerr.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "video not found", err: domainerr.ErrVideoNotFound, expected: http.StatusNotFound},
		{name: "user not found", err: domainerr.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "gateway unavailable", err: domainerr.ErrGatewayUnavailable, expected: http.StatusServiceUnavailable},
		{name: "store unavailable", err: domainerr.ErrStoreUnavailable, expected: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("surprise"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusForError(tc.err))
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Client errors carry the domain message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, domainerr.NewInsufficientFundsError(1, 9900, 500))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, domainerr.CodeInsufficientFunds, body.Code)
		assert.Contains(t, body.Message, "insufficient funds")
	})

	t.Run("Server errors are genericized", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, errors.New("pq: password authentication failed for user"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Store outage advertises a retry", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, fmt.Errorf("%w: connection refused", domainerr.ErrStoreUnavailable))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("Unknown server error carries no retry hint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, errors.New("surprise"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("Retry-After"))
	})
}
