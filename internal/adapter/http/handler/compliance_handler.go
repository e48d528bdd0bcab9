package handler

import (
	"partner-trust-platform/internal/adapter/http/dto"
	"partner-trust-platform/internal/adapter/http/middleware"
	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplianceHandler handles KYB, risk and program lifecycle endpoints.
type ComplianceHandler struct {
	complianceSvc ports.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceSvc ports.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceSvc: complianceSvc}
}

func entityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid entity id"))
		return uuid.Nil, false
	}
	return id, true
}

// adminContext pulls the actor and session attached by SessionAuth.
func adminContext(c *gin.Context) (domain.Actor, *domain.Session, bool) {
	actor, ok := middleware.ActorFrom(c)
	session := middleware.Session(c)
	if !ok || session == nil {
		response.Error(c, apperror.ErrInvalidCredentials())
		return domain.Actor{}, nil, false
	}
	return actor, session, true
}

// SubmitKYB handles POST /api/v1/entities/:id/kyb.
func (h *ComplianceHandler) SubmitKYB(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.KYBSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sub := domain.KYBSubmission{
		BusinessName: req.BusinessName,
		TaxID:        req.TaxID,
		Address:      req.Address,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
	}

	if err := h.complianceSvc.SubmitKYB(c.Request.Context(), id, sub, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"kyb_status": string(domain.KYBStatusSubmitted)})
}

// ApproveKYB handles POST /api/v1/admin/entities/:id/kyb/approve.
func (h *ComplianceHandler) ApproveKYB(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	actor, session, ok := adminContext(c)
	if !ok {
		return
	}

	if err := h.complianceSvc.ApproveKYB(c.Request.Context(), actor, session, id, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"kyb_status": string(domain.KYBStatusApproved)})
}

// RejectKYB handles POST /api/v1/admin/entities/:id/kyb/reject.
func (h *ComplianceHandler) RejectKYB(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.KYBRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	actor, session, ok := adminContext(c)
	if !ok {
		return
	}

	if err := h.complianceSvc.RejectKYB(c.Request.Context(), actor, session, id, req.Reason, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"kyb_status": string(domain.KYBStatusRejected)})
}

// RecomputeRisk handles POST /api/v1/admin/entities/:id/risk/recompute.
func (h *ComplianceHandler) RecomputeRisk(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	transition, err := h.complianceSvc.RecomputeRisk(c.Request.Context(), id, "manual_recompute")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"applied":        transition.Applied,
		"previous_score": transition.PreviousScore,
		"new_score":      transition.NewScore,
		"frozen":         transition.Frozen,
		"recovered":      transition.Recovered,
	})
}

// ProvisionProgram handles POST /api/v1/admin/entities/:id/program.
func (h *ComplianceHandler) ProvisionProgram(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	actor, session, ok := adminContext(c)
	if !ok {
		return
	}

	programID, err := h.complianceSvc.ProvisionProgram(c.Request.Context(), actor, session, id, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ProgramResponse{ProgramID: programID})
}

// IssueCard handles POST /api/v1/admin/entities/:id/cards.
func (h *ComplianceHandler) IssueCard(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	actor, session, ok := adminContext(c)
	if !ok {
		return
	}

	cardID, err := h.complianceSvc.IssueCard(c.Request.Context(), actor, session, id, ports.CardRequest{
		CardholderName: req.CardholderName,
		SpendingLimit:  req.SpendingLimit,
	}, middleware.Origin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CardResponse{CardID: cardID})
}

// ReactivateProgram handles POST /api/v1/admin/entities/:id/program/reactivate.
func (h *ComplianceHandler) ReactivateProgram(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	actor, session, ok := adminContext(c)
	if !ok {
		return
	}

	if err := h.complianceSvc.ReactivateProgram(c.Request.Context(), actor, session, id, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"program_status": string(domain.ProgramStatusActive)})
}

// BillingEvent handles POST /api/v1/webhooks/billing.
func (h *ComplianceHandler) BillingEvent(c *gin.Context) {
	var req dto.BillingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id, err := uuid.Parse(req.EntityID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid entity id"))
		return
	}

	event := ports.SubscriptionEvent(req.Event)
	if err := h.complianceSvc.HandleSubscriptionEvent(c.Request.Context(), id, event, middleware.Origin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}
