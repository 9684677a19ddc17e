package handler

import (
	"net/http"
	"strconv"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	adminUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/admin"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles operator HTTP requests
type AdminHandler struct {
	loginService *adminUseCase.LoginService
	creditTool   *adminUseCase.CreditTool
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	loginService *adminUseCase.LoginService,
	creditTool *adminUseCase.CreditTool,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		loginService: loginService,
		creditTool:   creditTool,
		logger:       logger,
	}
}

// Login handles the POST /api/admin/login endpoint
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	token, err := h.loginService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token})
}

// AddBalance handles the POST /api/admin/users/:userId/add-balance endpoint
func (h *AdminHandler) AddBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	var req dto.AddBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	entry, err := h.creditTool.Credit(c.Request.Context(), middleware.AdminUsername(c), userID, req.AmountPaise)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddBalanceResponse{
		TransactionID: entry.ID,
		UserID:        userID,
		AmountPaise:   entry.AmountPaise,
		BalancePaise:  entry.BalanceAfter,
		Balance:       entity.PaiseToRupeeString(entry.BalanceAfter),
	})
}
