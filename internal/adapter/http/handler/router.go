package handler

import (
	"partner-trust-platform/internal/adapter/http/middleware"
	redisStore "partner-trust-platform/internal/adapter/storage/redis"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	ComplianceSvc  ports.ComplianceService
	AuditSvc       ports.AuditService
	StepUpSvc      ports.StepUpService
	TokenSvc       ports.TokenService
	SessionStore   ports.SessionStore
	IdentityRepo   ports.IdentityRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(obs.Instrument())

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(obs.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sessionAuth := middleware.SessionAuth(deps.TokenSvc, deps.SessionStore, deps.IdentityRepo, deps.Logger)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.SessionSvc, deps.StepUpSvc, deps.IdentityRepo)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/reset/request", rl("auth_reset"), authHandler.RequestReset)
		auth.POST("/reset/confirm", rl("auth_reset"), authHandler.ResetPassword)
	}

	// --- Authenticated session routes ---
	authed := v1.Group("/auth", sessionAuth)
	{
		authed.POST("/stepup/verify", rl("auth_stepup"), authHandler.VerifyStepUp)
		authed.POST("/stepup/setup", rl("auth_stepup"), authHandler.StepUpSetup)
		authed.POST("/stepup/enable", rl("auth_stepup"), authHandler.EnableStepUp)
		authed.DELETE("/stepup/:id", rl("auth_stepup"), authHandler.DisableStepUp)
		authed.POST("/logout", authHandler.Logout)
	}

	// --- Compliance routes ---
	complianceHandler := NewComplianceHandler(deps.ComplianceSvc)
	entities := v1.Group("/entities", sessionAuth)
	{
		entities.POST("/:id/kyb", rl("kyb"), complianceHandler.SubmitKYB)
	}

	// --- Billing gateway webhooks ---
	v1.POST("/webhooks/billing", rl("billing_hooks"), complianceHandler.BillingEvent)

	// --- Admin routes ---
	// Authorization beyond authentication lives in the services; a valid
	// session of any role reaches the handler, and the service answers
	// AUTH_005 uniformly when the actor falls short.
	auditHandler := NewAuditHandler(deps.AuditSvc)
	admin := v1.Group("/admin", sessionAuth)
	{
		admin.POST("/entities/:id/kyb/approve", rl("admin"), complianceHandler.ApproveKYB)
		admin.POST("/entities/:id/kyb/reject", rl("admin"), complianceHandler.RejectKYB)
		admin.POST("/entities/:id/risk/recompute", rl("admin"), complianceHandler.RecomputeRisk)
		admin.POST("/entities/:id/program", rl("admin"), complianceHandler.ProvisionProgram)
		admin.POST("/entities/:id/program/reactivate", rl("admin"), complianceHandler.ReactivateProgram)
		admin.POST("/entities/:id/cards", rl("admin"), complianceHandler.IssueCard)
		admin.GET("/audit", rl("admin"), auditHandler.List)
		admin.DELETE("/identities/:id/reset-token", rl("admin"), authHandler.InvalidateResetToken)
	}

	return r
}
