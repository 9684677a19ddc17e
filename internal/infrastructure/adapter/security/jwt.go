package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	secport "github.com/arenalabs/arena-store/internal/domain/port/security"
)

// JWTIssuer signs and validates HS256 session tokens
type JWTIssuer struct {
	secret       []byte
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a token issuer with the given signing secret
func NewJWTIssuer(secret string, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		timeProvider: timeProvider,
	}
}

type userClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type adminClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Sign issues a user session token
func (i *JWTIssuer) Sign(claims secport.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(i.timeProvider.Now()),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a user session token and returns its claims
func (i *JWTIssuer) Parse(raw string) (secport.Claims, error) {
	var parsed userClaims
	token, err := jwt.ParseWithClaims(raw, &parsed, i.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil || !token.Valid || parsed.UserID == 0 {
		return secport.Claims{}, errs.ErrUnauthenticated
	}

	claims := secport.Claims{
		UserID:   parsed.UserID,
		Username: parsed.Username,
		Email:    parsed.Email,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

// SignAdmin issues an admin session token
func (i *JWTIssuer) SignAdmin(claims secport.AdminClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Username: claims.Username,
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(i.timeProvider.Now()),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// ParseAdmin validates an admin session token and returns its claims. A user
// token presented here fails on the missing admin marker.
func (i *JWTIssuer) ParseAdmin(raw string) (secport.AdminClaims, error) {
	var parsed adminClaims
	token, err := jwt.ParseWithClaims(raw, &parsed, i.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil || !token.Valid || !parsed.IsAdmin {
		return secport.AdminClaims{}, errs.ErrUnauthenticated
	}

	claims := secport.AdminClaims{
		Username: parsed.Username,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

func (i *JWTIssuer) keyFunc(token *jwt.Token) (interface{}, error) {
	return i.secret, nil
}
