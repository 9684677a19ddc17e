package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	securityport "github.com/arenalabs/arena-store/internal/domain/port/security"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	coremocks "github.com/arenalabs/arena-store/mocks/port/core"
	persistencemocks "github.com/arenalabs/arena-store/mocks/port/persistence"
	securitymocks "github.com/arenalabs/arena-store/mocks/port/security"
)

type authFixture struct {
	users   *persistencemocks.MockUserRepository
	wallets *persistencemocks.MockWalletRepository
	tokens  *securitymocks.MockTokenIssuer
	hasher  *securitymocks.MockPasswordHasher
	service *Service
	now     time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixed).Maybe()

	f := &authFixture{
		users:   persistencemocks.NewMockUserRepository(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		tokens:  securitymocks.NewMockTokenIssuer(t),
		hasher:  securitymocks.NewMockPasswordHasher(t),
		now:     fixed,
	}
	f.service = NewService(f.users, f.wallets, f.tokens, f.hasher, 168*time.Hour, mockTime, logger.NewNoopLogger())
	return f
}

func TestService_Signup(t *testing.T) {
	t.Run("Creates user, wallet and session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.hasher.On("Hash", "secret123").Return("$2a$12$hash", nil)
		f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash == "$2a$12$hash"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).Return(nil)
		f.wallets.On("GetOrCreate", mock.Anything, uint64(1)).Return(&entity.Wallet{}, nil)
		f.tokens.On("Sign", mock.MatchedBy(func(c securityport.Claims) bool {
			return c.UserID == 1 && c.Username == "alice" && c.ExpiresAt.Equal(f.now.Add(168*time.Hour))
		})).Return("signed.token", nil)

		session, err := f.service.Signup(context.Background(), "alice", "Alice@Example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), session.User.ID)
		assert.Equal(t, "alice@example.com", session.User.Email)
		assert.Equal(t, "signed.token", session.Token)
	})

	t.Run("Signup survives a failed eager wallet creation", func(t *testing.T) {
		f := newAuthFixture(t)

		f.hasher.On("Hash", "secret123").Return("$2a$12$hash", nil)
		f.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).Return(nil)
		f.wallets.On("GetOrCreate", mock.Anything, uint64(1)).Return(nil, errs.ErrStoreUnavailable)
		f.tokens.On("Sign", mock.Anything).Return("signed.token", nil)

		session, err := f.service.Signup(context.Background(), "alice", "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "signed.token", session.Token)
	})

	t.Run("Duplicate identity surfaces from the store", func(t *testing.T) {
		f := newAuthFixture(t)

		f.hasher.On("Hash", "secret123").Return("$2a$12$hash", nil)
		f.users.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser)

		_, err := f.service.Signup(context.Background(), "alice", "alice@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Validation failures never reach the store", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.Signup(context.Background(), "al", "alice@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = f.service.Signup(context.Background(), "alice", "not-an-email", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = f.service.Signup(context.Background(), "alice", "alice@example.com", "short")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Signin(t *testing.T) {
	storedUser := &entity.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
	}

	t.Run("Valid credentials issue a session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(storedUser, nil)
		f.hasher.On("Compare", "$2a$12$hash", "secret123").Return(true)
		f.tokens.On("Sign", mock.Anything).Return("signed.token", nil)

		session, err := f.service.Signin(context.Background(), "Alice@Example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "signed.token", session.Token)
		assert.Equal(t, uint64(1), session.User.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.On("GetByIdentifier", mock.Anything, "alice").Return(storedUser, nil)
		f.hasher.On("Compare", "$2a$12$hash", "wrong").Return(false)

		_, err := f.service.Signin(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.tokens.AssertNotCalled(t, "Sign", mock.Anything)
	})

	t.Run("Unknown identity maps to invalid credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound)

		_, err := f.service.Signin(context.Background(), "ghost", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Store failures are not masked as bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.On("GetByIdentifier", mock.Anything, "alice").Return(nil, errs.ErrStoreUnavailable)

		_, err := f.service.Signin(context.Background(), "alice", "secret123")
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.Signin(context.Background(), "", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = f.service.Signin(context.Background(), "alice", "")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_GetUser(t *testing.T) {
	t.Run("Loads the authenticated user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.On("GetByID", mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "alice"}, nil)

		user, err := f.service.GetUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Zero user id is unauthenticated", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.GetUser(context.Background(), 0)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
