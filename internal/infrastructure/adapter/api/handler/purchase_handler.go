package handler

import (
	"net/http"
	"strconv"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	domainerr "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	depositUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/deposit"
	purchaseUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/purchase"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles video purchase HTTP requests, both wallet-funded
// and gateway-funded
type PurchaseHandler struct {
	coordinator    *purchaseUseCase.Coordinator
	depositService *depositUseCase.Service
	logger         coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(
	coordinator *purchaseUseCase.Coordinator,
	depositService *depositUseCase.Service,
	logger coreport.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		coordinator:    coordinator,
		depositService: depositService,
		logger:         logger,
	}
}

// PurchaseWithWallet handles the POST /api/videos/:videoId/purchase endpoint
func (h *PurchaseHandler) PurchaseWithWallet(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("videoId"), 10, 64)
	if err != nil || videoID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidVideoID),
			Message: "Invalid video ID format",
		})
		return
	}

	result, err := h.coordinator.PurchaseWithWallet(c.Request.Context(), middleware.UserID(c), videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletPurchaseResponse{
		PurchaseID:            result.PurchaseID,
		VideoID:               videoID,
		AmountPaise:           result.AmountPaise,
		Amount:                entity.PaiseToRupeeString(result.AmountPaise),
		RemainingBalancePaise: result.RemainingBalancePaise,
		RemainingBalance:      entity.PaiseToRupeeString(result.RemainingBalancePaise),
	})
}

// CreateGatewayOrder handles the POST /api/payment/create-order endpoint
func (h *PurchaseHandler) CreateGatewayOrder(c *gin.Context) {
	var req dto.GatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	order, err := h.coordinator.CreateGatewayOrder(c.Request.Context(), middleware.UserID(c), req.VideoID)
	if err != nil {
		respondError(c, err)
		return
	}

	keyID, _ := h.depositService.Config()
	c.JSON(http.StatusOK, dto.GatewayOrderResponse{
		OrderID:     order.ID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
		KeyID:       keyID,
	})
}

// VerifyGatewayPayment handles the POST /api/payment/verify endpoint. A
// replayed confirmation for an already-owned video returns the original
// purchase.
func (h *PurchaseHandler) VerifyGatewayPayment(c *gin.Context) {
	var req dto.GatewayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	purchase, err := h.coordinator.RecordGatewayPurchase(c.Request.Context(), middleware.UserID(c), req.VideoID,
		purchaseUseCase.GatewayConfirmation{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Signature: req.Signature,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GatewayVerifyResponse{
		PurchaseID:  purchase.ID,
		VideoID:     purchase.VideoID,
		AmountPaise: purchase.AmountPaise,
	})
}

// ListPurchases handles the GET /api/purchases endpoint
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.coordinator.ListPurchases(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.PurchaseItem, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, dto.PurchaseItem{
			ID:          p.ID,
			VideoID:     p.VideoID,
			AmountPaise: p.AmountPaise,
			Amount:      entity.PaiseToRupeeString(p.AmountPaise),
			Method:      string(p.Method),
			PurchasedAt: p.PurchasedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, dto.PurchaseListResponse{
		Purchases: items,
		Total:     len(items),
	})
}

// GetPaymentConfig handles the GET /api/payment/config endpoint
func (h *PurchaseHandler) GetPaymentConfig(c *gin.Context) {
	keyID, enabled := h.depositService.Config()
	c.JSON(http.StatusOK, dto.PaymentConfigResponse{
		KeyID:   keyID,
		Enabled: enabled,
	})
}
