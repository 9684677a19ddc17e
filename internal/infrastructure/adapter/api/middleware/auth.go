package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	"github.com/arenalabs/arena-store/internal/domain/port/security"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextUserID        = "user_id"
	ContextUsername      = "username"
	ContextEmail         = "email"
	ContextAdminUsername = "admin_username"
)

// SessionCookieName is the cookie carrying the user session token
const SessionCookieName = "arena_token"

// Auth validates the user session token from the session cookie or the
// Authorization header and stores the identity in the request context
func Auth(tokens security.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// AdminAuth validates the admin session token from the Authorization header
func AdminAuth(tokens security.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.ParseAdmin(raw)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextAdminUsername, claims.Username)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by Auth
func UserID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(uint64)
	return userID
}

// AdminUsername extracts the authenticated operator name set by AdminAuth
func AdminUsername(c *gin.Context) string {
	name, _ := c.Get(ContextAdminUsername)
	username, _ := name.(string)
	return username
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	return bearerToken(c)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
		Message: "Authentication required",
	})
}
