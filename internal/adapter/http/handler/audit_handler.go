package handler

import (
	"strconv"
	"time"

	"partner-trust-platform/internal/adapter/http/dto"
	"partner-trust-platform/internal/adapter/http/middleware"
	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultAuditLimit = 100

// AuditHandler exposes the privileged ledger read.
type AuditHandler struct {
	auditSvc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// List handles GET /api/v1/admin/audit. The read itself lands in the ledger
// before any data is returned.
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	q, err := parseAuditQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.auditSvc.ViewAll(c.Request.Context(), actor, middleware.Origin(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuditRecordResponse, 0, len(records))
	for _, rec := range records {
		item := dto.AuditRecordResponse{
			ID:         rec.ID,
			ActorRole:  rec.ActorRole,
			Action:     string(rec.Action),
			TargetID:   rec.TargetID,
			TargetType: rec.TargetType,
			Details:    rec.Details,
			IPAddress:  rec.IPAddress,
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		}
		if rec.ActorID != nil {
			item.ActorID = rec.ActorID.String()
		}
		items = append(items, item)
	}

	response.OK(c, dto.AuditListResponse{Items: items, Count: len(items)})
}

func parseAuditQuery(c *gin.Context) (ports.AuditQuery, error) {
	q := ports.AuditQuery{Limit: defaultAuditLimit}

	if raw := c.Query("actor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, apperror.Validation("invalid actor_id")
		}
		q.ActorID = &id
	}
	if raw := c.Query("action"); raw != "" {
		action := domain.AuditAction(raw)
		if !action.Valid() {
			return q, apperror.ErrUnknownAuditAction(raw)
		}
		q.Action = &action
	}
	if raw := c.Query("target_id"); raw != "" {
		q.TargetID = &raw
	}
	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, apperror.Validation("invalid from timestamp")
		}
		q.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, apperror.Validation("invalid to timestamp")
		}
		q.To = &ts
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 1000 {
			return q, apperror.Validation("limit must be between 1 and 1000")
		}
		q.Limit = limit
	}
	return q, nil
}
