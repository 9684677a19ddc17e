package entity

import (
	"strings"
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
)

// User is the identity principal. The ledger reads it only to validate
// existence; credentials are handled by the auth usecase.
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique username
	Email        string    // Unique email, stored lowercase
	PasswordHash string    // bcrypt hash of the password
	CreatedAt    time.Time // When the user signed up
}

// NewUser creates a user with normalized identity fields
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 {
		return nil, errs.ErrInvalidRequest
	}
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return nil, errs.ErrInvalidRequest
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
