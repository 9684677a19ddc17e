package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/domain/port/security"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session is the result of a successful signup or signin
type Session struct {
	User  *entity.User
	Token string
}

// Service handles signup and signin. Deliberately minimal: no refresh
// tokens, no email verification, no password reset.
type Service struct {
	users        persistence.UserRepository
	wallets      persistence.WalletRepository
	tokens       security.TokenIssuer
	hasher       security.PasswordHasher
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	users persistence.UserRepository,
	wallets persistence.WalletRepository,
	tokens security.TokenIssuer,
	hasher security.PasswordHasher,
	tokenTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		wallets:      wallets,
		tokens:       tokens,
		hasher:       hasher,
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Signup registers a new user, eagerly creates their wallet and issues a token
func (s *Service) Signup(ctx context.Context, username, email, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", errs.ErrInvalidRequest)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", errs.ErrInvalidRequest)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", errs.ErrInvalidRequest)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(username, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Wallet is created eagerly so the first ledger access never races signup
	if _, err := s.wallets.GetOrCreate(ctx, user.ID); err != nil {
		s.logger.Warn("Eager wallet creation failed, will retry lazily", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User signed up", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return &Session{User: user, Token: token}, nil
}

// Signin verifies credentials against the stored hash and issues a token.
// The identifier matches either email or username, case-insensitively.
func (s *Service) Signin(ctx context.Context, identifier, password string) (*Session, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", errs.ErrInvalidRequest)
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

// GetUser loads the authenticated user's fresh identity
func (s *Service) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	return s.users.GetByID(ctx, userID)
}

func (s *Service) issueToken(user *entity.User) (string, error) {
	token, err := s.tokens.Sign(security.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: s.timeProvider.Now().Add(s.tokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return token, nil
}
