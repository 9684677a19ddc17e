package routes

import (
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/security"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/handler"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens security.TokenIssuer,
	authHandler *handler.AuthHandler,
	walletHandler *handler.WalletHandler,
	purchaseHandler *handler.PurchaseHandler,
	adminHandler *handler.AdminHandler,
) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/signup", authHandler.Signup)
		api.POST("/signin", authHandler.Signin)
		api.POST("/signout", authHandler.Signout)
		api.GET("/payment/config", purchaseHandler.GetPaymentConfig)
		api.POST("/admin/login", adminHandler.Login)

		// Authenticated user routes
		user := api.Group("")
		user.Use(middleware.Auth(tokens))
		{
			user.GET("/me", authHandler.Me)

			user.GET("/wallet", walletHandler.GetWallet)
			user.POST("/wallet/deposit/create-order", walletHandler.CreateDepositOrder)
			user.POST("/wallet/deposit/verify", walletHandler.VerifyDeposit)
			user.GET("/wallet/transactions", walletHandler.ListTransactions)

			user.GET("/purchases", purchaseHandler.ListPurchases)
			user.POST("/videos/:videoId/purchase", purchaseHandler.PurchaseWithWallet)
			user.POST("/payment/create-order", purchaseHandler.CreateGatewayOrder)
			user.POST("/payment/verify", purchaseHandler.VerifyGatewayPayment)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(tokens))
		{
			admin.POST("/users/:userId/add-balance", adminHandler.AddBalance)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
