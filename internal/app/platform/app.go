package platform

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	approvalHandler "github.com/pipsmade/platform/internal/approval/handler"
	approvalService "github.com/pipsmade/platform/internal/approval/service"
	assetHandler "github.com/pipsmade/platform/internal/asset/handler"
	assetRepository "github.com/pipsmade/platform/internal/asset/repository"
	assetService "github.com/pipsmade/platform/internal/asset/service"
	"github.com/pipsmade/platform/internal/config"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/middleware"
	notificationHandler "github.com/pipsmade/platform/internal/notification/handler"
	notificationRepository "github.com/pipsmade/platform/internal/notification/repository"
	notificationService "github.com/pipsmade/platform/internal/notification/service"
	"github.com/pipsmade/platform/internal/notifier"
	planHandler "github.com/pipsmade/platform/internal/plan/handler"
	planRepository "github.com/pipsmade/platform/internal/plan/repository"
	planService "github.com/pipsmade/platform/internal/plan/service"
	transactionHandler "github.com/pipsmade/platform/internal/transaction/handler"
	transactionRepository "github.com/pipsmade/platform/internal/transaction/repository"
	transactionService "github.com/pipsmade/platform/internal/transaction/service"
	userHandler "github.com/pipsmade/platform/internal/user/handler"
	userRepository "github.com/pipsmade/platform/internal/user/repository"
	userService "github.com/pipsmade/platform/internal/user/service"
	"github.com/pipsmade/platform/internal/utils"
	walletHandler "github.com/pipsmade/platform/internal/wallet/handler"
	walletRepository "github.com/pipsmade/platform/internal/wallet/repository"
	walletService "github.com/pipsmade/platform/internal/wallet/service"
)

func Run() {
	cfg := *config.NewConfig()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Unable to initialize zap logger", err)
	}

	decimal.MarshalJSONWithoutQuotes = true

	jwtManager := utils.InitJWTManager(cfg.TokenName, cfg.Secret, logger)
	postgresPool := initPostgresPool(&cfg, logger)
	trManager := manager.Must(trmpgx.NewDefaultFactory(postgresPool.DB))

	webhookNotifier := notifier.NewWebhookNotifier(&cfg, logger)

	userRepo := userRepository.NewPostgresUserRepository(postgresPool, logger)
	userServ := userService.NewUserService(userRepo, logger)

	assetRepo := assetRepository.NewPostgresAssetRepository(postgresPool, logger)
	assetServ := assetService.NewAssetService(assetRepo, logger)

	walletRepo := walletRepository.NewPostgresWalletRepository(postgresPool, logger)
	walletServ := walletService.NewWalletService(walletRepo, logger)

	transactionRepo := transactionRepository.NewPostgresTransactionRepository(postgresPool, logger)
	transactionServ := transactionService.NewTransactionService(transactionRepo, assetRepo, walletRepo, webhookNotifier, logger)

	notificationRepo := notificationRepository.NewPostgresNotificationRepository(postgresPool, logger)
	notificationServ := notificationService.NewNotificationService(notificationRepo, logger)

	approvalServ := approvalService.NewApprovalService(transactionRepo, walletRepo, notificationRepo, webhookNotifier, trManager, logger)

	planRepo := planRepository.NewPostgresPlanRepository(postgresPool, logger)
	planServ := planService.NewPlanService(planRepo, transactionRepo, trManager, logger)

	requestLogger := middleware.InitRequestLogger(logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)
	staffAuth := middleware.InitStaffAuth(userServ, logger)

	e := echo.New()

	e.Use(requestLogger.RequestLogger())
	e.Use(middleware.Compress())
	e.Use(middleware.Decompress())

	userHandler.NewUserHandler(e, userServ, jwtManager, cfg.Secret, logger)
	assetHandler.NewAssetHandler(e, assetServ, logger, jwtAuth, staffAuth)
	walletHandler.NewWalletHandler(e, walletServ, logger, jwtAuth)
	transactionHandler.NewTransactionHandler(e, transactionServ, logger, jwtAuth)
	notificationHandler.NewNotificationHandler(e, notificationServ, logger, jwtAuth)
	approvalHandler.NewApprovalHandler(e, approvalServ, logger, jwtAuth, staffAuth)
	planHandler.NewPlanHandler(e, planServ, logger, jwtAuth, staffAuth)

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-quit

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown
		if errShutdown := e.Shutdown(shutdownCtx); errShutdown != nil {
			e.Logger.Fatal(errShutdown)
		}
		serverStopCtx()
	}()

	errStart := e.Start(cfg.Address)
	if errStart != nil && !errors.Is(errStart, http.ErrServerClosed) {
		log.Fatal(errStart)
	}

	<-serverCtx.Done()
}

func initPostgresPool(cfg *config.Config, logger *zap.Logger) *db.PostgresPool {
	postgresPool, err := db.NewPostgresPool(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}

	migrations, err := db.NewMigrations(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to create migrations", zap.Error(err))
	}

	err = migrations.MigrateUp()
	if err != nil {
		logger.Fatal("Unable to up migrations", zap.Error(err))
	}

	logger.Info("Connected to database", zap.String("DSN", cfg.DatabaseURI))
	return postgresPool
}
