package service

import (
	"context"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"
	"partner-trust-platform/pkg/apperror"
	"partner-trust-platform/pkg/ids"

	"github.com/rs/zerolog"
)

// appendTimeout bounds how long a single ledger write may block the calling
// operation.
const appendTimeout = 5 * time.Second

// AuditServiceImpl implements ports.AuditService. Appends are synchronous:
// the record is durable before the call returns, and a write failure is
// surfaced to the caller rather than logged and dropped.
type AuditServiceImpl struct {
	ledger ports.AuditLedger
	log    zerolog.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(ledger ports.AuditLedger, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{ledger: ledger, log: log}
}

// Append validates and durably writes one ledger record, returning its ID.
func (s *AuditServiceImpl) Append(ctx context.Context, entry *domain.AuditRecord) (string, error) {
	if !entry.Action.Valid() {
		obs.LedgerAppends.WithLabelValues(string(entry.Action), "rejected").Inc()
		return "", apperror.ErrUnknownAuditAction(string(entry.Action))
	}

	if entry.ID == "" {
		entry.ID = ids.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.ReadOnly = true

	writeCtx, cancel := context.WithTimeout(ctx, appendTimeout)
	defer cancel()

	if err := s.ledger.Append(writeCtx, entry); err != nil {
		obs.LedgerAppends.WithLabelValues(string(entry.Action), "error").Inc()
		s.log.Error().Err(err).
			Str("action", string(entry.Action)).
			Str("target_id", entry.TargetID).
			Msg("audit ledger write failed")
		return "", apperror.ErrLedgerWrite(err)
	}

	obs.LedgerAppends.WithLabelValues(string(entry.Action), "ok").Inc()
	s.log.Info().
		Str("audit_id", entry.ID).
		Str("action", string(entry.Action)).
		Str("target_id", entry.TargetID).
		Str("ip", entry.IPAddress).
		Msg("audit")

	return entry.ID, nil
}

// Query reads ledger records matching the filter, most recent first.
func (s *AuditServiceImpl) Query(ctx context.Context, q ports.AuditQuery) ([]domain.AuditRecord, error) {
	records, err := s.ledger.Query(ctx, q)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return records, nil
}

// ViewAll is the privileged bulk read. Access itself is evidence: every call
// lands in the ledger as AUDIT_VIEWED before the results are returned.
func (s *AuditServiceImpl) ViewAll(ctx context.Context, actor domain.Actor, origin domain.RequestOrigin, q ports.AuditQuery) ([]domain.AuditRecord, error) {
	if err := requireGodMode(actor); err != nil {
		return nil, err
	}

	if _, err := s.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionAuditViewed,
		TargetType: "audit_ledger",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return nil, err
	}

	return s.Query(ctx, q)
}
