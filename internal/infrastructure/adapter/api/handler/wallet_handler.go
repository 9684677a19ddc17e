package handler

import (
	"net/http"
	"strconv"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	depositUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/deposit"
	walletUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and deposit HTTP requests
type WalletHandler struct {
	walletService  *walletUseCase.Service
	depositService *depositUseCase.Service
	logger         coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	walletService *walletUseCase.Service,
	depositService *depositUseCase.Service,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		walletService:  walletService,
		depositService: depositService,
		logger:         logger,
	}
}

// GetWallet handles the GET /api/wallet endpoint
func (h *WalletHandler) GetWallet(c *gin.Context) {
	summary, err := h.walletService.GetSummary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{
		BalancePaise:        summary.BalancePaise,
		Balance:             entity.PaiseToRupeeString(summary.BalancePaise),
		TotalDepositedPaise: summary.TotalDepositedPaise,
		TotalDeposited:      entity.PaiseToRupeeString(summary.TotalDepositedPaise),
		TotalSpentPaise:     summary.TotalSpentPaise,
		TotalSpent:          entity.PaiseToRupeeString(summary.TotalSpentPaise),
		TransactionCount:    summary.TransactionCount,
	})
}

// CreateDepositOrder handles the POST /api/wallet/deposit/create-order endpoint
func (h *WalletHandler) CreateDepositOrder(c *gin.Context) {
	var req dto.DepositOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	order, err := h.depositService.CreateOrder(c.Request.Context(), middleware.UserID(c), req.AmountPaise)
	if err != nil {
		respondError(c, err)
		return
	}

	keyID, _ := h.depositService.Config()
	c.JSON(http.StatusOK, dto.DepositOrderResponse{
		OrderID:     order.ID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
		KeyID:       keyID,
	})
}

// VerifyDeposit handles the POST /api/wallet/deposit/verify endpoint.
// Replaying the same payment id returns the recorded credit and the current
// balance without crediting again.
func (h *WalletHandler) VerifyDeposit(c *gin.Context) {
	var req dto.DepositVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.depositService.Verify(c.Request.Context(), middleware.UserID(c), depositUseCase.VerifyRequest{
		OrderID:     req.OrderID,
		PaymentID:   req.PaymentID,
		Signature:   req.Signature,
		AmountPaise: req.AmountPaise,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DepositVerifyResponse{
		TransactionID: result.Transaction.ID,
		AmountPaise:   result.Transaction.AmountPaise,
		BalancePaise:  result.BalancePaise,
		Balance:       entity.PaiseToRupeeString(result.BalancePaise),
	})
}

// ListTransactions handles the GET /api/wallet/transactions endpoint
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	typeFilter := c.Query("type")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, offset = walletUseCase.NormalizePage(limit, offset)

	entries, total, err := h.walletService.ListTransactions(c.Request.Context(), middleware.UserID(c), typeFilter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.TransactionItem, 0, len(entries))
	for _, entry := range entries {
		direction := ""
		switch {
		case entry.IsCredit():
			direction = "credit"
		case entry.IsDebit():
			direction = "debit"
		}
		items = append(items, dto.TransactionItem{
			ID:            entry.ID,
			Type:          string(entry.Type),
			Direction:     direction,
			AmountPaise:   entry.AmountPaise,
			Amount:        entity.PaiseToRupeeString(entry.AmountPaise),
			BalanceAfter:  entry.BalanceAfter,
			ReferenceType: entry.ReferenceType,
			ReferenceID:   entry.ReferenceID,
			Description:   entry.Description,
			Status:        string(entry.Status),
			CreatedAt:     entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: items,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		HasMore:      int64(offset+len(items)) < total,
	})
}
