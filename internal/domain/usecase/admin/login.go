package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/security"
)

// Credentials is the statically configured admin identity. There is a
// single operator account, not an admin user table.
type Credentials struct {
	Username     string
	PasswordHash string
}

// LoginService authenticates the configured operator account
type LoginService struct {
	creds        Credentials
	tokens       security.TokenIssuer
	hasher       security.PasswordHasher
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLoginService creates a new admin login service
func NewLoginService(
	creds Credentials,
	tokens security.TokenIssuer,
	hasher security.PasswordHasher,
	tokenTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LoginService {
	return &LoginService{
		creds:        creds,
		tokens:       tokens,
		hasher:       hasher,
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Enabled reports whether an admin account is configured at all
func (s *LoginService) Enabled() bool {
	return s.creds.Username != "" && s.creds.PasswordHash != ""
}

// Login verifies the operator credentials and issues an admin token.
// Username comparison is constant time alongside the hash comparison so
// the response timing does not reveal which field was wrong.
func (s *LoginService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("%w: admin access is not configured", errs.ErrUnauthenticated)
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passwordOK := s.hasher.Compare(s.creds.PasswordHash, password)
	if !usernameOK || !passwordOK {
		s.logger.Warn("Admin login rejected", map[string]any{
			"username": username,
		})
		return "", errs.ErrInvalidCredentials
	}

	token, err := s.tokens.SignAdmin(security.AdminClaims{
		Username:  s.creds.Username,
		ExpiresAt: s.timeProvider.Now().Add(s.tokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("Admin logged in", map[string]any{
		"username": s.creds.Username,
	})
	return token, nil
}
