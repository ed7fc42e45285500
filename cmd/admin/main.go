package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/piresc/admin-gateway/internal/pkg/config"
	"github.com/piresc/admin-gateway/internal/pkg/database"
	"github.com/piresc/admin-gateway/internal/pkg/guard"
	"github.com/piresc/admin-gateway/internal/pkg/health"
	jwtpkg "github.com/piresc/admin-gateway/internal/pkg/jwt"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/middleware"
	nrpkg "github.com/piresc/admin-gateway/internal/pkg/newrelic"
	"github.com/piresc/admin-gateway/internal/pkg/password"
	"github.com/piresc/admin-gateway/internal/pkg/server"
	"github.com/piresc/admin-gateway/services/admin/gateway"
	"github.com/piresc/admin-gateway/services/admin/handler"
	httpHandler "github.com/piresc/admin-gateway/services/admin/handler/http"
	"github.com/piresc/admin-gateway/services/admin/repository"
	"github.com/piresc/admin-gateway/services/admin/usecase"
)

func main() {
	appName := "admin-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/admin.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepo(postgresClient.GetDB())
	schemaCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := adminRepo.EnsureSchema(schemaCtx); err != nil {
		cancel()
		zapLogger.Fatal("Failed to prepare admin schema", zap.Error(err))
	}
	cancel()
	otpRepo := repository.NewOTPRepo(redisClient)

	// Initialize gateways
	identityClient, err := gateway.NewIdentityClient(configs.Identity)
	if err != nil {
		zapLogger.Fatal("Failed to create identity client", zap.Error(err))
	}
	mailer := gateway.NewSMTPMailer(configs.SMTP, int(configs.OTP.TTL.Minutes()))

	verifier, err := guard.NewVerifier(configs.AccessToken, identityClient)
	if err != nil {
		zapLogger.Fatal("Failed to create token verifier", zap.Error(err))
	}

	resetTokens, err := jwtpkg.NewResetTokenSigner(configs.ResetToken)
	if err != nil {
		zapLogger.Fatal("Failed to create reset token signer", zap.Error(err))
	}

	// Initialize UseCase
	adminUC := usecase.NewAdminUC(
		adminRepo,
		otpRepo,
		identityClient,
		mailer,
		password.NewHasher(configs.Password.BcryptCost),
		resetTokens,
		configs,
	)

	// Initialize handlers
	adminHandler := httpHandler.NewAdminHandler(adminUC)
	routes := handler.NewHandler(adminHandler, verifier, redisClient.GetClient(), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger, 3*time.Second)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("identity", identityClient)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	routes.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("identity", func(context.Context) error { return identityClient.Close() })
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
