package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	walletUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/dto"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	coremocks "github.com/arenalabs/arena-store/mocks/port/core"
	persistencemocks "github.com/arenalabs/arena-store/mocks/port/persistence"
)

type walletHandlerFixture struct {
	uow     *persistencemocks.MockUnitOfWork
	wallets *persistencemocks.MockWalletRepository
	txns    *persistencemocks.MockTransactionRepository
	router  *gin.Engine
	now     time.Time
}

func newWalletHandlerFixture(t *testing.T) *walletHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixed).Maybe()

	f := &walletHandlerFixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		txns:    persistencemocks.NewMockTransactionRepository(t),
		now:     fixed,
	}
	f.uow.On("GetWalletRepository", mock.Anything).Return(f.wallets).Maybe()
	f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txns).Maybe()

	walletService := walletUseCase.NewService(f.uow, mockTime, logger.NewNoopLogger())
	h := NewWalletHandler(walletService, nil, logger.NewNoopLogger())

	f.router = gin.New()
	authed := f.router.Group("/api", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint64(1))
	})
	authed.GET("/wallet", h.GetWallet)
	authed.GET("/wallet/transactions", h.ListTransactions)
	return f
}

func (f *walletHandlerFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func walletWithBalance(t *testing.T, userID, walletID uint64, balancePaise int64) *entity.Wallet {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	w, err := entity.NewWallet(userID, mockTime)
	require.NoError(t, err)
	w.ID = walletID
	w.SetBalance(balancePaise)
	return w
}

func TestWalletHandler_GetWallet(t *testing.T) {
	t.Run("returns summary with formatted amounts", func(t *testing.T) {
		// Arrange
		f := newWalletHandlerFixture(t)
		f.wallets.On("GetOrCreate", mock.Anything, uint64(1)).
			Return(walletWithBalance(t, 1, 10, 12550), nil)
		f.txns.On("SummaryByUser", mock.Anything, uint64(1)).
			Return(&persistence.WalletSummary{
				TotalDepositedPaise: 50000,
				TotalSpentPaise:     37450,
				TransactionCount:    7,
			}, nil)

		// Act
		rec := f.get(t, "/api/wallet")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.WalletResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(12550), resp.BalancePaise)
		assert.Equal(t, "125.50", resp.Balance)
		assert.Equal(t, int64(50000), resp.TotalDepositedPaise)
		assert.Equal(t, "500.00", resp.TotalDeposited)
		assert.Equal(t, int64(37450), resp.TotalSpentPaise)
		assert.Equal(t, int64(7), resp.TransactionCount)
	})

	t.Run("store failure maps to 500 with generic message", func(t *testing.T) {
		// Arrange
		f := newWalletHandlerFixture(t)
		f.wallets.On("GetOrCreate", mock.Anything, uint64(1)).
			Return(nil, errs.ErrStoreUnavailable)

		// Act
		rec := f.get(t, "/api/wallet")

		// Assert
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Message)
	})
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	t.Run("returns page with has_more flag", func(t *testing.T) {
		// Arrange
		f := newWalletHandlerFixture(t)
		entries := []entity.WalletTransaction{
			{
				ID: 42, UserID: 1, WalletID: 10,
				Type: entity.TypeDeposit, AmountPaise: 5000,
				BalanceBefore: 0, BalanceAfter: 5000,
				PaymentID: "pay_abc", Status: entity.StatusCompleted,
				CreatedAt: f.now,
			},
			{
				ID: 43, UserID: 1, WalletID: 10,
				Type: entity.TypePurchase, AmountPaise: -1900,
				BalanceBefore: 5000, BalanceAfter: 3100,
				ReferenceType: entity.ReferenceVideo, ReferenceID: 7,
				Status:    entity.StatusCompleted,
				CreatedAt: f.now,
			},
		}
		f.txns.On("ListByUser", mock.Anything, uint64(1), "", 2, 0).
			Return(entries, int64(5), nil)

		// Act
		rec := f.get(t, "/api/wallet/transactions?limit=2&offset=0")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TransactionListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "DEPOSIT", resp.Transactions[0].Type)
		assert.Equal(t, "credit", resp.Transactions[0].Direction)
		assert.Equal(t, "50.00", resp.Transactions[0].Amount)
		assert.Equal(t, int64(-1900), resp.Transactions[1].AmountPaise)
		assert.Equal(t, "debit", resp.Transactions[1].Direction)
		assert.Equal(t, "video", resp.Transactions[1].ReferenceType)
		assert.Equal(t, int64(5), resp.Total)
		assert.True(t, resp.HasMore)
		assert.Equal(t, "2025-06-01T12:00:00Z", resp.Transactions[0].CreatedAt)
	})

	t.Run("missing limit falls back to default page size", func(t *testing.T) {
		// Arrange
		f := newWalletHandlerFixture(t)
		f.txns.On("ListByUser", mock.Anything, uint64(1), "", walletUseCase.DefaultPageLimit, 0).
			Return([]entity.WalletTransaction{}, int64(0), nil)

		// Act
		rec := f.get(t, "/api/wallet/transactions")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TransactionListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Transactions)
		assert.False(t, resp.HasMore)
	})

	t.Run("unknown type filter rejected with 400", func(t *testing.T) {
		// Arrange
		f := newWalletHandlerFixture(t)

		// Act
		rec := f.get(t, "/api/wallet/transactions?type=BOGUS")

		// Assert
		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.txns.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
