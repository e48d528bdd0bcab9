package middleware

import (
	"net/http"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxSession = "session"
	CtxActor   = "actor"
)

// SessionAuth validates the bearer token, loads the live session from the
// store, and snapshots the actor from the identity record. Token validity
// alone is not enough: a revoked session (logout, password reset) fails here
// even while its JWT is still within its expiry window.
func SessionAuth(
	tokenSvc ports.TokenService,
	sessions ports.SessionStore,
	identityRepo ports.IdentityRepository,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidCredentials())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			response.Error(c, apperror.ErrInvalidCredentials())
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			log.Error().Err(err).Msg("session lookup failed")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if session == nil {
			response.Error(c, apperror.ErrInvalidCredentials())
			c.Abort()
			return
		}

		identity, err := identityRepo.GetByID(c.Request.Context(), session.IdentityID)
		if err != nil {
			log.Error().Err(err).Msg("identity lookup failed")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if identity == nil || !identity.IsActive() {
			response.Error(c, apperror.ErrAccountInactive())
			c.Abort()
			return
		}

		c.Set(CtxSession, session)
		c.Set(CtxActor, identity.Actor())
		c.Next()
	}
}

// Session returns the authenticated session attached by SessionAuth.
func Session(c *gin.Context) *domain.Session {
	if v, exists := c.Get(CtxSession); exists {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

// ActorFrom returns the actor snapshot attached by SessionAuth.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	if v, exists := c.Get(CtxActor); exists {
		if a, ok := v.(domain.Actor); ok {
			return a, true
		}
	}
	return domain.Actor{}, false
}

// Origin captures the request's network origin for ledger evidence.
func Origin(c *gin.Context) domain.RequestOrigin {
	return domain.RequestOrigin{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
