package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/gateway"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
)

// WalletPurchaseResult is returned after a successful wallet-funded purchase
type WalletPurchaseResult struct {
	PurchaseID            uint64
	WalletTransactionID   uint64
	RemainingBalancePaise int64
	AmountPaise           int64
}

// GatewayConfirmation carries a gateway payment confirmation for a video
type GatewayConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Coordinator turns a verified payment event, from either funding path, into
// exactly one purchase record. The price charged is the video's price at the
// moment of purchase.
type Coordinator struct {
	uow          persistence.UnitOfWork
	walletSvc    *wallet.Service
	verifier     gateway.SignatureVerifier
	orders       gateway.OrderClient
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCoordinator creates a new purchase coordinator
func NewCoordinator(
	uow persistence.UnitOfWork,
	walletSvc *wallet.Service,
	verifier gateway.SignatureVerifier,
	orders gateway.OrderClient,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Coordinator {
	return &Coordinator{
		uow:          uow,
		walletSvc:    walletSvc,
		verifier:     verifier,
		orders:       orders,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PurchaseWithWallet executes Path B: one atomic unit spanning the
// already-owned check, the wallet lock and debit, and the purchase insert.
// On any failure the whole unit rolls back; no partial debit, no orphan rows.
func (c *Coordinator) PurchaseWithWallet(ctx context.Context, userID, videoID uint64) (*WalletPurchaseResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if videoID == 0 {
		return nil, errs.ErrInvalidVideoID
	}

	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	defer func() {
		_ = c.uow.Rollback(txCtx)
	}()

	video, err := c.uow.GetVideoRepository(txCtx).GetByID(txCtx, videoID)
	if err != nil {
		return nil, err
	}

	// The ownership check must share the unit with the debit and insert so
	// two concurrent attempts cannot both pass it; the unique (user, video)
	// constraint is the final backstop regardless.
	purchases := c.uow.GetPurchaseRepository(txCtx)
	owned, err := purchases.ExistsByUserAndVideo(txCtx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, errs.NewAlreadyOwnedError(userID, videoID)
	}

	entry, err := c.walletSvc.Debit(txCtx, userID, video.PricePaise, videoID,
		fmt.Sprintf("Purchase of %q", video.Title))
	if err != nil {
		return nil, err
	}

	p, err := entity.NewWalletPurchase(userID, videoID, video.PricePaise, entry.ID, c.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := purchases.Create(txCtx, p); err != nil {
		return nil, err
	}

	if err := c.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	c.logger.Info("Wallet purchase completed", map[string]any{
		"user_id":       userID,
		"video_id":      videoID,
		"amount_paise":  video.PricePaise,
		"purchase_id":   p.ID,
		"balance_after": entry.BalanceAfter,
	})

	return &WalletPurchaseResult{
		PurchaseID:            p.ID,
		WalletTransactionID:   entry.ID,
		RemainingBalancePaise: entry.BalanceAfter,
		AmountPaise:           video.PricePaise,
	}, nil
}

// ListPurchases returns the user's owned videos in reverse purchase order
func (c *Coordinator) ListPurchases(ctx context.Context, userID uint64) ([]entity.Purchase, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return c.uow.GetPurchaseRepository(ctx).ListByUser(ctx, userID)
}

// CreateGatewayOrder creates an external gateway order for a video purchase.
// The quoted price is stamped into the order notes; the amount actually
// recorded is the price at verification time.
func (c *Coordinator) CreateGatewayOrder(ctx context.Context, userID, videoID uint64) (*gateway.Order, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !c.orders.Enabled() {
		return nil, errs.ErrGatewayUnavailable
	}

	video, err := c.uow.GetVideoRepository(ctx).GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("video_%d_%s", userID, uuid.NewString()[:8])
	return c.orders.CreateOrder(ctx, video.PricePaise, receipt, map[string]string{
		"user_id":      fmt.Sprintf("%d", userID),
		"video_id":     fmt.Sprintf("%d", videoID),
		"quoted_paise": fmt.Sprintf("%d", video.PricePaise),
		"purpose":      "video_purchase",
	})
}

// RecordGatewayPurchase executes Path A: signature verification, then a
// conflict-safe purchase insert. A retried callback for an already-recorded
// purchase is a no-op returning the existing record. No wallet involvement.
func (c *Coordinator) RecordGatewayPurchase(ctx context.Context, userID, videoID uint64, conf GatewayConfirmation) (*entity.Purchase, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if videoID == 0 {
		return nil, errs.ErrInvalidVideoID
	}
	if conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		return nil, fmt.Errorf("%w: missing payment details", errs.ErrPaymentVerificationFailed)
	}

	if !c.verifier.Verify(conf.OrderID, conf.PaymentID, conf.Signature) {
		c.logger.Warn("Gateway purchase signature rejected", map[string]any{
			"user_id":  userID,
			"video_id": videoID,
			"order_id": conf.OrderID,
		})
		return nil, errs.ErrPaymentVerificationFailed
	}

	video, err := c.uow.GetVideoRepository(ctx).GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	p, err := entity.NewGatewayPurchase(userID, videoID, video.PricePaise, conf.PaymentID, conf.OrderID, c.timeProvider)
	if err != nil {
		return nil, err
	}

	recorded, created, err := c.uow.GetPurchaseRepository(ctx).CreateIfAbsent(ctx, p)
	if err != nil {
		return nil, err
	}
	if !created {
		c.logger.Info("Gateway purchase replay, purchase already recorded", map[string]any{
			"user_id":     userID,
			"video_id":    videoID,
			"purchase_id": recorded.ID,
		})
	} else {
		c.logger.Info("Gateway purchase recorded", map[string]any{
			"user_id":      userID,
			"video_id":     videoID,
			"amount_paise": video.PricePaise,
			"purchase_id":  recorded.ID,
		})
	}
	return recorded, nil
}
