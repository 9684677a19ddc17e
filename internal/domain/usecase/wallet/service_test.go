package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	coremocks "github.com/arenalabs/arena-store/mocks/port/core"
	persistencemocks "github.com/arenalabs/arena-store/mocks/port/persistence"
)

type serviceFixture struct {
	uow     *persistencemocks.MockUnitOfWork
	wallets *persistencemocks.MockWalletRepository
	txns    *persistencemocks.MockTransactionRepository
	users   *persistencemocks.MockUserRepository
	service *Service
	now     time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixed).Maybe()

	f := &serviceFixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		txns:    persistencemocks.NewMockTransactionRepository(t),
		users:   persistencemocks.NewMockUserRepository(t),
		now:     fixed,
	}
	f.service = NewService(f.uow, mockTime, logger.NewNoopLogger())
	return f
}

func walletWithBalance(t *testing.T, userID, walletID uint64, balancePaise int64) *entity.Wallet {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	w, err := entity.NewWallet(userID, mockTime)
	require.NoError(t, err)
	w.ID = walletID
	w.SetBalance(balancePaise)
	return w
}

func TestService_Credit(t *testing.T) {
	t.Run("Successful credit appends ledger entry and commits", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.users)
		f.users.On("Exists", mock.Anything, uint64(1)).Return(true, nil)
		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 2500), nil)
		f.wallets.On("UpdateBalance", mock.Anything, uint64(10), int64(7500)).Return(nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("Create", mock.Anything, mock.AnythingOfType("*entity.WalletTransaction")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.WalletTransaction).ID = 555
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		entry, err := f.service.Credit(context.Background(), 1, 5000, CreditSource{
			PaymentID: "pay_abc",
			OrderID:   "order_xyz",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(555), entry.ID)
		assert.Equal(t, entity.TypeDeposit, entry.Type)
		assert.Equal(t, int64(5000), entry.AmountPaise)
		assert.Equal(t, int64(2500), entry.BalanceBefore)
		assert.Equal(t, int64(7500), entry.BalanceAfter)
		assert.Equal(t, "pay_abc", entry.PaymentID)
	})

	t.Run("Unknown user rolls back without touching the wallet", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.users)
		f.users.On("Exists", mock.Anything, uint64(99)).Return(false, nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		entry, err := f.service.Credit(context.Background(), 99, 5000, CreditSource{})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Ledger insert failure rolls back the balance update", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.users)
		f.users.On("Exists", mock.Anything, uint64(1)).Return(true, nil)
		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 0), nil)
		f.wallets.On("UpdateBalance", mock.Anything, uint64(10), int64(5000)).Return(nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateDeposit)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		entry, err := f.service.Credit(context.Background(), 1, 5000, CreditSource{PaymentID: "pay_dup"})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrDuplicateDeposit)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Invalid inputs never open a unit", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Credit(context.Background(), 0, 5000, CreditSource{})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = f.service.Credit(context.Background(), 1, 0, CreditSource{})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_Debit(t *testing.T) {
	t.Run("Successful debit inside the caller's unit", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 15000), nil)
		f.wallets.On("UpdateBalance", mock.Anything, uint64(10), int64(5100)).Return(nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("Create", mock.Anything, mock.AnythingOfType("*entity.WalletTransaction")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.WalletTransaction).ID = 777
			}).
			Return(nil)

		entry, err := f.service.Debit(context.Background(), 1, 9900, 77, "Purchase of \"Final Highlights\"")

		require.NoError(t, err)
		assert.Equal(t, uint64(777), entry.ID)
		assert.Equal(t, entity.TypePurchase, entry.Type)
		assert.Equal(t, int64(-9900), entry.AmountPaise)
		assert.Equal(t, int64(5100), entry.BalanceAfter)
		assert.Equal(t, uint64(77), entry.ReferenceID)
		// Debit joins the caller's unit and never resolves it itself
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Insufficient funds fails before any write", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 500), nil)

		entry, err := f.service.Debit(context.Background(), 1, 9900, 77, "")

		assert.Nil(t, entry)
		assert.True(t, errs.IsInsufficientFundsError(err))
		f.wallets.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock failure propagates", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("LockByUserID", mock.Anything, uint64(1)).
			Return(nil, errs.ErrStoreUnavailable)

		_, err := f.service.Debit(context.Background(), 1, 9900, 77, "")
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestService_GetSummary(t *testing.T) {
	t.Run("Combines wallet balance with ledger aggregates", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets)
		f.wallets.On("GetOrCreate", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 5100), nil)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("SummaryByUser", mock.Anything, uint64(1)).
			Return(&persistence.WalletSummary{
				TotalDepositedPaise: 15000,
				TotalSpentPaise:     9900,
				TransactionCount:    2,
			}, nil)

		summary, err := f.service.GetSummary(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(5100), summary.BalancePaise)
		assert.Equal(t, int64(15000), summary.TotalDepositedPaise)
		assert.Equal(t, int64(9900), summary.TotalSpentPaise)
		assert.Equal(t, int64(2), summary.TransactionCount)
	})

	t.Run("Zero user id rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.GetSummary(context.Background(), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestService_ListTransactions(t *testing.T) {
	t.Run("Unknown type filter rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		_, _, err := f.service.ListTransactions(context.Background(), 1, "WITHDRAWAL", 20, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Page is normalized before hitting the store", func(t *testing.T) {
		f := newServiceFixture(t)

		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns)
		f.txns.On("ListByUser", mock.Anything, uint64(1), "DEPOSIT", MaxPageLimit, 0).
			Return([]entity.WalletTransaction{}, int64(0), nil)

		_, total, err := f.service.ListTransactions(context.Background(), 1, "DEPOSIT", 9999, -5)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}
