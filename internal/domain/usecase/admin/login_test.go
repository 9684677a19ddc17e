package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	securityport "github.com/arenalabs/arena-store/internal/domain/port/security"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	coremocks "github.com/arenalabs/arena-store/mocks/port/core"
	securitymocks "github.com/arenalabs/arena-store/mocks/port/security"
)

func newLoginService(t *testing.T, creds Credentials) (*LoginService, *securitymocks.MockTokenIssuer, *securitymocks.MockPasswordHasher) {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	tokens := securitymocks.NewMockTokenIssuer(t)
	hasher := securitymocks.NewMockPasswordHasher(t)

	svc := NewLoginService(creds, tokens, hasher, 24*time.Hour, mockTime, logger.NewNoopLogger())
	return svc, tokens, hasher
}

func TestLoginService_Login(t *testing.T) {
	creds := Credentials{Username: "admin", PasswordHash: "$2a$12$hash"}

	t.Run("Valid credentials issue an admin token", func(t *testing.T) {
		svc, tokens, hasher := newLoginService(t, creds)

		hasher.On("Compare", "$2a$12$hash", "correct-password").Return(true)
		tokens.On("SignAdmin", mock.MatchedBy(func(c securityport.AdminClaims) bool {
			return c.Username == "admin" && !c.ExpiresAt.IsZero()
		})).Return("signed.admin.token", nil)

		token, err := svc.Login(context.Background(), "admin", "correct-password")

		require.NoError(t, err)
		assert.Equal(t, "signed.admin.token", token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, tokens, hasher := newLoginService(t, creds)

		hasher.On("Compare", "$2a$12$hash", "wrong-password").Return(false)

		_, err := svc.Login(context.Background(), "admin", "wrong-password")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "SignAdmin", mock.Anything)
	})

	t.Run("Wrong username fails even with the right password", func(t *testing.T) {
		svc, tokens, hasher := newLoginService(t, creds)

		// The hash comparison still runs so timing does not leak which field was wrong
		hasher.On("Compare", "$2a$12$hash", "correct-password").Return(true)

		_, err := svc.Login(context.Background(), "intruder", "correct-password")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "SignAdmin", mock.Anything)
	})

	t.Run("Unconfigured admin account disables login", func(t *testing.T) {
		svc, _, _ := newLoginService(t, Credentials{})

		assert.False(t, svc.Enabled())

		_, err := svc.Login(context.Background(), "admin", "anything")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
