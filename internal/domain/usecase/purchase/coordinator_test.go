package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	gatewayport "github.com/arenalabs/arena-store/internal/domain/port/gateway"
	"github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	coremocks "github.com/arenalabs/arena-store/mocks/port/core"
	gatewaymocks "github.com/arenalabs/arena-store/mocks/port/gateway"
	persistencemocks "github.com/arenalabs/arena-store/mocks/port/persistence"
)

type coordinatorFixture struct {
	uow       *persistencemocks.MockUnitOfWork
	wallets   *persistencemocks.MockWalletRepository
	txns      *persistencemocks.MockTransactionRepository
	purchases *persistencemocks.MockPurchaseRepository
	videos    *persistencemocks.MockVideoRepository
	verifier  *gatewaymocks.MockSignatureVerifier
	orders    *gatewaymocks.MockOrderClient
	coord     *Coordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	f := &coordinatorFixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		wallets:   persistencemocks.NewMockWalletRepository(t),
		txns:      persistencemocks.NewMockTransactionRepository(t),
		purchases: persistencemocks.NewMockPurchaseRepository(t),
		videos:    persistencemocks.NewMockVideoRepository(t),
		verifier:  gatewaymocks.NewMockSignatureVerifier(t),
		orders:    gatewaymocks.NewMockOrderClient(t),
	}

	noop := logger.NewNoopLogger()
	walletSvc := wallet.NewService(f.uow, mockTime, noop)
	f.coord = NewCoordinator(f.uow, walletSvc, f.verifier, f.orders, mockTime, noop)
	return f
}

func fundedWallet(t *testing.T, userID, walletID uint64, balancePaise int64) *entity.Wallet {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	w, err := entity.NewWallet(userID, mockTime)
	require.NoError(t, err)
	w.ID = walletID
	w.SetBalance(balancePaise)
	return w
}

func testVideo() *entity.Video {
	return &entity.Video{ID: 77, Title: "Final Highlights", PricePaise: 9900}
}

func TestCoordinator_PurchaseWithWallet(t *testing.T) {
	t.Run("Happy path debits and records in one unit", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("ExistsByUserAndVideo", mock.Anything, uint64(1), uint64(77)).Return(false, nil)

		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).Return(fundedWallet(t, 1, 10, 15000), nil)
		f.wallets.On("UpdateBalance", mock.Anything, uint64(10), int64(5100)).Return(nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("Create", mock.Anything, mock.AnythingOfType("*entity.WalletTransaction")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.WalletTransaction).ID = 555
			}).
			Return(nil)

		f.purchases.On("Create", mock.Anything, mock.AnythingOfType("*entity.Purchase")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Purchase).ID = 888
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		result, err := f.coord.PurchaseWithWallet(context.Background(), 1, 77)

		require.NoError(t, err)
		assert.Equal(t, uint64(888), result.PurchaseID)
		assert.Equal(t, uint64(555), result.WalletTransactionID)
		assert.Equal(t, int64(5100), result.RemainingBalancePaise)
		assert.Equal(t, int64(9900), result.AmountPaise)
	})

	t.Run("Already owned short-circuits before the wallet lock", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("ExistsByUserAndVideo", mock.Anything, uint64(1), uint64(77)).Return(true, nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		result, err := f.coord.PurchaseWithWallet(context.Background(), 1, 77)

		assert.Nil(t, result)
		assert.True(t, errs.IsAlreadyOwnedError(err))
		f.wallets.AssertNotCalled(t, "LockByUserID", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Insufficient funds rolls back the whole unit", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("ExistsByUserAndVideo", mock.Anything, uint64(1), uint64(77)).Return(false, nil)
		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).Return(fundedWallet(t, 1, 10, 500), nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		result, err := f.coord.PurchaseWithWallet(context.Background(), 1, 77)

		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientFundsError(err))
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Purchase insert failure rolls back the debit", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("ExistsByUserAndVideo", mock.Anything, uint64(1), uint64(77)).Return(false, nil)
		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).Return(fundedWallet(t, 1, 10, 15000), nil)
		f.wallets.On("UpdateBalance", mock.Anything, uint64(10), int64(5100)).Return(nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.purchases.On("Create", mock.Anything, mock.Anything).
			Return(errs.NewAlreadyOwnedError(1, 77))
		f.uow.On("Rollback", mock.Anything).Return(nil)

		result, err := f.coord.PurchaseWithWallet(context.Background(), 1, 77)

		assert.Nil(t, result)
		assert.True(t, errs.IsAlreadyOwnedError(err))
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(404)).Return(nil, errs.ErrVideoNotFound)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.coord.PurchaseWithWallet(context.Background(), 1, 404)
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
	})
}

func TestCoordinator_ListPurchases(t *testing.T) {
	t.Run("Returns the user's library", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		txID := uint64(555)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("ListByUser", mock.Anything, uint64(1)).
			Return([]entity.Purchase{
				{ID: 888, UserID: 1, VideoID: 77, AmountPaise: 9900, Method: entity.MethodWallet, WalletTransactionID: &txID},
				{ID: 301, UserID: 1, VideoID: 12, AmountPaise: 4900, Method: entity.MethodGateway, PaymentID: "pay_old"},
			}, nil)

		purchases, err := f.coord.ListPurchases(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, uint64(77), purchases[0].VideoID)
		assert.Equal(t, entity.MethodGateway, purchases[1].Method)
	})

	t.Run("Zero user id rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		_, err := f.coord.ListPurchases(context.Background(), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		f.purchases.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}

func TestCoordinator_CreateGatewayOrder(t *testing.T) {
	t.Run("Order carries the current video price", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.orders.On("Enabled").Return(true)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.orders.On("CreateOrder", mock.Anything, int64(9900), mock.Anything, mock.Anything).
			Return(&gatewayport.Order{ID: "order_xyz", AmountPaise: 9900, Currency: "INR"}, nil)

		order, err := f.coord.CreateGatewayOrder(context.Background(), 1, 77)

		require.NoError(t, err)
		assert.Equal(t, "order_xyz", order.ID)
	})

	t.Run("Gateway disabled", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.orders.On("Enabled").Return(false)

		_, err := f.coord.CreateGatewayOrder(context.Background(), 1, 77)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestCoordinator_RecordGatewayPurchase(t *testing.T) {
	conf := GatewayConfirmation{OrderID: "order_xyz", PaymentID: "pay_abc", Signature: "sig"}

	t.Run("Verified payment records a purchase at the current price", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.verifier.On("Verify", "order_xyz", "pay_abc", "sig").Return(true)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*entity.Purchase")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Purchase).ID = 888
			}).
			Return(func(ctx context.Context, p *entity.Purchase) *entity.Purchase { return p }, true, nil)

		p, err := f.coord.RecordGatewayPurchase(context.Background(), 1, 77, conf)

		require.NoError(t, err)
		assert.Equal(t, uint64(888), p.ID)
		assert.Equal(t, entity.MethodGateway, p.Method)
		assert.Equal(t, int64(9900), p.AmountPaise)
		assert.Equal(t, "pay_abc", p.PaymentID)
	})

	t.Run("Replayed callback returns the existing purchase", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		existing := &entity.Purchase{ID: 888, UserID: 1, VideoID: 77, Method: entity.MethodGateway}

		f.verifier.On("Verify", "order_xyz", "pay_abc", "sig").Return(true)
		f.uow.On("GetVideoRepository", mock.Anything).Return(f.videos)
		f.videos.On("GetByID", mock.Anything, uint64(77)).Return(testVideo(), nil)
		f.uow.On("GetPurchaseRepository", mock.Anything).Return(f.purchases)
		f.purchases.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(existing, false, nil)

		p, err := f.coord.RecordGatewayPurchase(context.Background(), 1, 77, conf)

		require.NoError(t, err)
		assert.Equal(t, uint64(888), p.ID)
	})

	t.Run("Bad signature rejected before any store access", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.verifier.On("Verify", "order_xyz", "pay_abc", "sig").Return(false)

		_, err := f.coord.RecordGatewayPurchase(context.Background(), 1, 77, conf)

		assert.ErrorIs(t, err, errs.ErrPaymentVerificationFailed)
		f.uow.AssertNotCalled(t, "GetVideoRepository", mock.Anything)
	})

	t.Run("Missing payment details rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		_, err := f.coord.RecordGatewayPurchase(context.Background(), 1, 77, GatewayConfirmation{})
		assert.ErrorIs(t, err, errs.ErrPaymentVerificationFailed)
	})
}
