package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-trust-platform/config"
	"partner-trust-platform/internal/adapter/banking"
	httpHandler "partner-trust-platform/internal/adapter/http/handler"
	"partner-trust-platform/internal/adapter/notify"
	pgStorage "partner-trust-platform/internal/adapter/storage/postgres"
	redisStorage "partner-trust-platform/internal/adapter/storage/redis"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"
	"partner-trust-platform/internal/service"
	"partner-trust-platform/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Partner Trust Platform")

	obs.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewAuditLedgerRepo(pool)
	identityRepo := pgStorage.NewIdentityRepo(pool)
	complianceRepo := pgStorage.NewComplianceRepo(pool)

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	delayQueue := redisStorage.NewDelayQueue(rdb, log)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	stepUpSvc := service.NewTOTPStepUpService(cfg.StepUp.Issuer)

	// Initialize external collaborators
	bankingGateway := banking.NewGateway(cfg.Banking, log)
	notifier := notify.NewLogNotifier(log)
	taskSvc := notify.NewLogTaskService(log)
	creditIssuer := notify.NewLogCreditIssuer(log)

	// Initialize business services
	auditSvc := service.NewAuditService(ledgerRepo, log)
	automationSvc := service.NewAutomationService(delayQueue, auditSvc, notifier, taskSvc, creditIssuer, complianceRepo, log)
	complianceSvc := service.NewComplianceService(complianceRepo, auditSvc, automationSvc, bankingGateway, log)
	sessionSvc := service.NewSessionService(identityRepo, sessionStore, auditSvc, hashSvc, encSvc, tokenSvc, stepUpSvc, log)

	// Durable delayed actions run regardless of request traffic
	go automationSvc.RunScheduler(ctx, cfg.Automation.PollInterval, cfg.Automation.PollBatchSize)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		ComplianceSvc:  complianceSvc,
		AuditSvc:       auditSvc,
		StepUpSvc:      stepUpSvc,
		TokenSvc:       tokenSvc,
		SessionStore:   sessionStore,
		IdentityRepo:   identityRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
