package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	adminUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/admin"
	authUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/auth"
	depositUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/deposit"
	purchaseUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/purchase"
	walletUseCase "github.com/arenalabs/arena-store/internal/domain/usecase/wallet"

	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/handler"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/api/routes"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/database"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/gateway"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/repository"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/security"
	timeProvider "github.com/arenalabs/arena-store/internal/infrastructure/adapter/time"
	"github.com/arenalabs/arena-store/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	dbPort, err := strconv.Atoi(cfg.Database.Port)
	if err != nil {
		appLogger.Error("Invalid database port", map[string]any{"port": cfg.Database.Port})
		os.Exit(1)
	}

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            dbPort,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories bound to the base connection, for reads outside any
	// atomic unit
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger)

	uow := dbManager.CreateUnitOfWork()

	// Security adapters
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, tp)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Gateway adapters
	verifier := gateway.NewHMACVerifier(cfg.Gateway.KeySecret, appLogger)
	orders := gateway.NewRazorpayClient(cfg.Gateway.KeyID, cfg.Gateway.KeySecret, appLogger)
	if !orders.Enabled() {
		appLogger.Warn("Payment gateway credentials not configured, deposits and gateway purchases are disabled", nil)
	}

	// Use cases
	walletService := walletUseCase.NewService(uow, tp, appLogger)
	depositService := depositUseCase.NewService(walletService, uow, verifier, orders, tp, appLogger)
	coordinator := purchaseUseCase.NewCoordinator(uow, walletService, verifier, orders, tp, appLogger)
	authService := authUseCase.NewService(userRepo, walletRepo, tokens, hasher, cfg.Auth.TokenTTL, tp, appLogger)
	adminLogin := adminUseCase.NewLoginService(adminUseCase.Credentials{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}, tokens, hasher, cfg.Admin.TokenTTL, tp, appLogger)
	creditTool := adminUseCase.NewCreditTool(walletService, userRepo, appLogger)

	// API handlers
	cookieMaxAge := int(cfg.Auth.TokenTTL.Seconds())
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge, cfg.Auth.SecureMode, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, depositService, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(coordinator, depositService, appLogger)
	adminHandler := handler.NewAdminHandler(adminLogin, creditTool, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, authHandler, walletHandler, purchaseHandler, adminHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
