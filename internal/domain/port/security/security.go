package security

import "time"

// Claims is the identity carried by a user session token
type Claims struct {
	UserID    uint64
	Username  string
	Email     string
	ExpiresAt time.Time
}

// AdminClaims is the identity carried by an admin session token
type AdminClaims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenIssuer signs and validates session tokens. Keys live at adapter level
// so the auth usecase stays crypto-library agnostic.
type TokenIssuer interface {
	Sign(claims Claims) (string, error)
	Parse(raw string) (Claims, error)

	SignAdmin(claims AdminClaims) (string, error)
	ParseAdmin(raw string) (AdminClaims, error)
}

// PasswordHasher hashes and verifies user credentials
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
