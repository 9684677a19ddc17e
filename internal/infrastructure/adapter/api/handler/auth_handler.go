package handler

import (
	"net/http"

	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	authUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/auth"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, signin and session HTTP requests
type AuthHandler struct {
	authService  *authUseCase.Service
	cookieMaxAge int
	secureCookie bool
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, cookieMaxAge int, secureCookie bool, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Signup handles the POST /api/signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authService.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusCreated, dto.SessionResponse{
		User: dto.UserResponse{
			ID:       session.User.ID,
			Username: session.User.Username,
			Email:    session.User.Email,
		},
		Token: session.Token,
	})
}

// Signin handles the POST /api/signin endpoint
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authService.Signin(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, dto.SessionResponse{
		User: dto.UserResponse{
			ID:       session.User.ID,
			Username: session.User.Username,
			Email:    session.User.Email,
		},
		Token: session.Token,
	})
}

// Me handles the GET /api/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Signout handles the POST /api/signout endpoint by expiring the session cookie
func (h *AuthHandler) Signout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
}
