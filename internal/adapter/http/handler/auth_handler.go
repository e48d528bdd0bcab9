package handler

import (
	"net/http"

	"partner-trust-platform/internal/adapter/http/dto"
	"partner-trust-platform/internal/adapter/http/middleware"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles authentication and credential lifecycle endpoints.
type AuthHandler struct {
	sessionSvc   ports.SessionService
	stepUpSvc    ports.StepUpService
	identityRepo ports.IdentityRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessionSvc ports.SessionService, stepUpSvc ports.StepUpService, identityRepo ports.IdentityRepository) *AuthHandler {
	return &AuthHandler{sessionSvc: sessionSvc, stepUpSvc: stepUpSvc, identityRepo: identityRepo}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.sessionSvc.Login(c.Request.Context(), req.Email, req.Password, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:          result.Token,
		Expiry:         result.Expiry.Unix(),
		RequiresStepUp: result.Session.RequiresStepUp,
		StepUpVerified: result.Session.StepUpVerified,
	})
}

// VerifyStepUp handles POST /api/v1/auth/stepup/verify.
func (h *AuthHandler) VerifyStepUp(c *gin.Context) {
	var req dto.StepUpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session := middleware.Session(c)
	if session == nil {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	verified, err := h.sessionSvc.VerifyStepUp(c.Request.Context(), session.ID, req.Code, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"step_up_verified": verified.StepUpVerified})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := middleware.Session(c)
	if session == nil {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	if err := h.sessionSvc.Logout(c.Request.Context(), session.ID, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestReset handles POST /api/v1/auth/reset/request. The response is the
// same whether or not the email exists; the token travels out of band.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req dto.ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if _, _, err := h.sessionSvc.RequestReset(c.Request.Context(), req.Email, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "If the account exists, a reset token has been sent"})
}

// ResetPassword handles POST /api/v1/auth/reset/confirm.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.sessionSvc.ResetPassword(c.Request.Context(), req.Email, req.Token, req.NewPassword, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Password updated, all sessions revoked"})
}

// StepUpSetup handles POST /api/v1/auth/stepup/setup. The generated secret
// is returned once and stored only after EnableStepUp confirms possession.
func (h *AuthHandler) StepUpSetup(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	identity, err := h.identityRepo.GetByID(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if identity == nil {
		response.Error(c, apperror.ErrNotFound("identity"))
		return
	}

	secret, otpauthURL, err := h.stepUpSvc.GenerateSecret(identity.Email)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.StepUpSetupResponse{Secret: secret, OTPAuthURL: otpauthURL})
}

// EnableStepUp handles POST /api/v1/auth/stepup/enable.
func (h *AuthHandler) EnableStepUp(c *gin.Context) {
	var req dto.StepUpEnableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	err := h.sessionSvc.EnableStepUp(c.Request.Context(), actor, req.SetupCode, req.Secret, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"step_up_enabled": true})
}

// DisableStepUp handles DELETE /api/v1/auth/stepup/:id.
func (h *AuthHandler) DisableStepUp(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	if err := h.sessionSvc.DisableStepUp(c.Request.Context(), actor, targetID, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"step_up_enabled": false})
}

// InvalidateResetToken handles DELETE /api/v1/admin/identities/:id/reset-token.
func (h *AuthHandler) InvalidateResetToken(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	if err := h.sessionSvc.InvalidateResetToken(c.Request.Context(), actor, targetID, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
