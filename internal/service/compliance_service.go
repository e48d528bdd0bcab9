package service

import (
	"context"
	"fmt"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"
	"partner-trust-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ComplianceServiceImpl implements ports.ComplianceService: the KYB
// workflow, the risk state machine and the gates in front of every banking
// operation.
type ComplianceServiceImpl struct {
	complianceRepo ports.ComplianceRepository
	auditSvc       ports.AuditService
	automationSvc  ports.AutomationService
	banking        ports.BankingGateway
	log            zerolog.Logger
}

// NewComplianceService creates a new ComplianceServiceImpl.
func NewComplianceService(
	complianceRepo ports.ComplianceRepository,
	auditSvc ports.AuditService,
	automationSvc ports.AutomationService,
	banking ports.BankingGateway,
	log zerolog.Logger,
) *ComplianceServiceImpl {
	return &ComplianceServiceImpl{
		complianceRepo: complianceRepo,
		auditSvc:       auditSvc,
		automationSvc:  automationSvc,
		banking:        banking,
		log:            log,
	}
}

// fireTrigger dispatches an automation trigger. Automation is a side
// channel: a dispatch failure is logged, never propagated into the
// triggering operation.
func (s *ComplianceServiceImpl) fireTrigger(ctx context.Context, trigger domain.Trigger, actx domain.ActionContext) {
	if err := s.automationSvc.Trigger(ctx, trigger, actx); err != nil {
		s.log.Warn().Err(err).Str("trigger", string(trigger)).Msg("automation trigger failed")
	}
}

// SubmitKYB validates and records a business verification submission.
// Allowed from pending or rejected; approved and in-flight submissions
// cannot be overwritten.
func (s *ComplianceServiceImpl) SubmitKYB(ctx context.Context, entityID uuid.UUID, sub domain.KYBSubmission, origin domain.RequestOrigin) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}

	if !entity.CanResubmitKYB() {
		return apperror.Validation(fmt.Sprintf("KYB cannot be submitted from status %s", entity.KYBStatus))
	}
	if field := sub.MissingField(); field != "" {
		return apperror.ErrMissingField(field)
	}

	now := time.Now().UTC()
	entity.Name = sub.BusinessName
	entity.TaxID = sub.TaxID
	entity.BusinessAddress = sub.Address
	entity.KYBStatus = domain.KYBStatusSubmitted
	entity.KYBSubmittedAt = &now
	entity.KYBRejectReason = ""

	if err := s.complianceRepo.UpdateKYB(ctx, entity); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		Action:     domain.AuditActionKYBSubmitted,
		TargetID:   entityID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"business_name":%q}`, sub.BusinessName),
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// ApproveKYB marks a submitted verification approved. God mode plus a
// step-up-verified session, then the risk score is recomputed with the new
// signal.
func (s *ComplianceServiceImpl) ApproveKYB(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) error {
	if err := requireGodMode(actor); err != nil {
		return err
	}
	if err := requireStepUp(session); err != nil {
		return err
	}

	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	if entity.KYBStatus != domain.KYBStatusSubmitted {
		return apperror.Validation(fmt.Sprintf("KYB cannot be approved from status %s", entity.KYBStatus))
	}

	now := time.Now().UTC()
	entity.KYBStatus = domain.KYBStatusApproved
	entity.KYBApprovedAt = &now

	if err := s.complianceRepo.UpdateKYB(ctx, entity); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionKYBApproved,
		TargetID:   entityID.String(),
		TargetType: "company",
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}

	s.fireTrigger(ctx, domain.TriggerKYBApproved, domain.ActionContext{CompanyID: entityID})

	if _, err := s.RecomputeRisk(ctx, entityID, "kyb_approved"); err != nil {
		s.log.Warn().Err(err).Str("company_id", entityID.String()).Msg("risk recompute after KYB approval failed")
	}
	return nil
}

// RejectKYB marks a submitted verification rejected with a reason. The
// client may resubmit.
func (s *ComplianceServiceImpl) RejectKYB(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, reason string, origin domain.RequestOrigin) error {
	if err := requireGodMode(actor); err != nil {
		return err
	}
	if err := requireStepUp(session); err != nil {
		return err
	}
	if reason == "" {
		return apperror.Validation("rejection reason is required")
	}

	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	if entity.KYBStatus != domain.KYBStatusSubmitted {
		return apperror.Validation(fmt.Sprintf("KYB cannot be rejected from status %s", entity.KYBStatus))
	}

	entity.KYBStatus = domain.KYBStatusRejected
	entity.KYBRejectReason = reason

	if err := s.complianceRepo.UpdateKYB(ctx, entity); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionKYBRejected,
		TargetID:   entityID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"reason":%q}`, reason),
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// RecomputeRisk snapshots the entity's signals, recomputes the score and
// applies the transition with a compare-and-set. When two recomputes race,
// exactly one applies; the loser emits nothing. Each crossing below the
// threshold fires the freeze exactly once, whether or not the program is
// still suspended from an earlier crossing.
func (s *ComplianceServiceImpl) RecomputeRisk(ctx context.Context, entityID uuid.UUID, reason string) (*ports.RiskTransition, error) {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return nil, apperror.ErrNotFound("company")
	}

	now := time.Now().UTC()
	newScore := domain.ComputeRiskScore(entity.Signals(now))
	prevScore := entity.RiskScore
	prevStatus := entity.ProgramStatus

	newStatus := prevStatus
	frozen := false
	recovered := false
	switch {
	case newScore < domain.RiskThreshold && prevScore >= domain.RiskThreshold:
		// The event keys on the score crossing; the status change applies
		// only when there is an active program to suspend.
		frozen = true
		if prevStatus == domain.ProgramStatusActive {
			newStatus = domain.ProgramStatusSuspended
		}
	case newScore >= domain.RiskThreshold && prevScore < domain.RiskThreshold && prevStatus == domain.ProgramStatusSuspended:
		// Recovery is notify-only. Unfreezing stays a manual, step-up-gated
		// admin decision.
		recovered = true
	}

	applied, err := s.complianceRepo.ApplyRiskTransition(ctx, entityID, prevScore, prevStatus, newScore, newStatus)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !applied {
		s.log.Debug().Str("company_id", entityID.String()).Msg("risk transition lost the race, skipping")
		return &ports.RiskTransition{Applied: false, PreviousScore: prevScore, NewScore: newScore}, nil
	}

	transition := &ports.RiskTransition{
		Applied:       true,
		PreviousScore: prevScore,
		NewScore:      newScore,
		Frozen:        frozen,
		Recovered:     recovered,
	}

	if frozen {
		obs.RiskFreezes.Inc()
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionRiskFreezeTriggered,
			TargetID:   entityID.String(),
			TargetType: "company",
			Details:    fmt.Sprintf(`{"previous_score":%d,"new_score":%d,"reason":%q}`, prevScore, newScore, reason),
		}); err != nil {
			return nil, err
		}

		// The provider call happens only on the active-to-suspended
		// transition; a re-crossing while already suspended leaves the
		// provider state untouched.
		if entity.ProgramID != "" && prevStatus == domain.ProgramStatusActive {
			if err := s.banking.FreezeProgram(ctx, entity.ProgramID, reason); err != nil {
				s.log.Error().Err(err).Str("program_id", entity.ProgramID).Msg("banking freeze call failed")
			}
		}

		s.fireTrigger(ctx, domain.TriggerRiskScoreDrop, domain.ActionContext{
			CompanyID: entityID,
			Data:      map[string]string{"score": fmt.Sprintf("%d", newScore), "reason": reason},
		})
	}

	if recovered {
		s.fireTrigger(ctx, domain.TriggerRiskScoreRecovered, domain.ActionContext{
			CompanyID: entityID,
			Data:      map[string]string{"score": fmt.Sprintf("%d", newScore)},
		})
	}

	return transition, nil
}

// EnforceKYB gates on an approved business verification.
func (s *ComplianceServiceImpl) EnforceKYB(ctx context.Context, entityID uuid.UUID) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	return enforceKYB(entity)
}

// EnforceRiskScore gates on the risk score and program freeze state.
func (s *ComplianceServiceImpl) EnforceRiskScore(ctx context.Context, entityID uuid.UUID) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	return enforceRiskScore(entity)
}

// EnforceCardIssuanceTier gates card issuance on subscription tier.
func (s *ComplianceServiceImpl) EnforceCardIssuanceTier(ctx context.Context, entityID uuid.UUID) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	return enforceCardTier(entity)
}

// EnforceSubscription gates on an active subscription.
func (s *ComplianceServiceImpl) EnforceSubscription(ctx context.Context, entityID uuid.UUID) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	return enforceSubscription(entity)
}

func enforceKYB(entity *domain.ComplianceEntity) error {
	if entity.KYBStatus != domain.KYBStatusApproved {
		return apperror.ErrRiskGate("business verification not approved")
	}
	return nil
}

func enforceRiskScore(entity *domain.ComplianceEntity) error {
	if entity.ProgramStatus == domain.ProgramStatusSuspended {
		return apperror.ErrRiskGate("program is frozen")
	}
	if entity.RiskScore < domain.RiskThreshold {
		return apperror.ErrRiskGate("risk score below threshold")
	}
	return nil
}

func enforceCardTier(entity *domain.ComplianceEntity) error {
	if entity.Tier != domain.TierGrowth && entity.Tier != domain.TierScale {
		return apperror.ErrRiskGate("subscription tier does not allow card issuance")
	}
	return nil
}

func enforceSubscription(entity *domain.ComplianceEntity) error {
	if !entity.Subscription {
		return apperror.ErrRiskGate("subscription is not active")
	}
	return nil
}

// ProvisionProgram creates the banking program for a fully gated entity.
// Every gate runs here in the core, regardless of what the caller already
// checked.
func (s *ComplianceServiceImpl) ProvisionProgram(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) (string, error) {
	if err := requireGodMode(actor); err != nil {
		return "", err
	}
	if err := requireStepUp(session); err != nil {
		return "", err
	}

	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return "", apperror.ErrNotFound("company")
	}
	if entity.ProgramID != "" {
		return "", apperror.Validation("program already provisioned")
	}

	if err := enforceKYB(entity); err != nil {
		return "", err
	}
	if err := enforceSubscription(entity); err != nil {
		return "", err
	}
	if err := enforceRiskScore(entity); err != nil {
		return "", err
	}

	programID, err := s.banking.CreateProgram(ctx, entity)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("create banking program: %w", err))
	}

	if err := s.complianceRepo.SetProgram(ctx, entityID, programID, domain.ProgramStatusActive); err != nil {
		return "", apperror.ErrDatabaseError(err)
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionBankProgramCreated,
		TargetID:   entityID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"program_id":%q}`, programID),
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return "", err
	}

	s.fireTrigger(ctx, domain.TriggerProgramLaunched, domain.ActionContext{
		CompanyID: entityID,
		Data:      map[string]string{"program_id": programID},
	})

	return programID, nil
}

// IssueCard issues a card on the entity's program after every gate passes:
// verification, subscription, risk, tier and an active program.
func (s *ComplianceServiceImpl) IssueCard(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, req ports.CardRequest, origin domain.RequestOrigin) (string, error) {
	if err := requireGodMode(actor); err != nil {
		return "", err
	}
	if err := requireStepUp(session); err != nil {
		return "", err
	}

	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return "", apperror.ErrNotFound("company")
	}

	if err := enforceKYB(entity); err != nil {
		return "", err
	}
	if err := enforceSubscription(entity); err != nil {
		return "", err
	}
	if err := enforceRiskScore(entity); err != nil {
		return "", err
	}
	if err := enforceCardTier(entity); err != nil {
		return "", err
	}
	if entity.ProgramID == "" || entity.ProgramStatus != domain.ProgramStatusActive {
		return "", apperror.ErrRiskGate("program is not active")
	}

	cardID, err := s.banking.IssueCard(ctx, entity.ProgramID, req)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("issue card: %w", err))
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionCardIssued,
		TargetID:   entityID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"card_id":%q,"program_id":%q}`, cardID, entity.ProgramID),
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return "", err
	}

	s.fireTrigger(ctx, domain.TriggerCardIssued, domain.ActionContext{
		CompanyID: entityID,
		Data:      map[string]string{"card_id": cardID},
	})

	return cardID, nil
}

// ReactivateProgram manually unfreezes a suspended program. The score must
// have recovered first; unfreezing never happens automatically.
func (s *ComplianceServiceImpl) ReactivateProgram(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) error {
	if err := requireGodMode(actor); err != nil {
		return err
	}
	if err := requireStepUp(session); err != nil {
		return err
	}

	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}
	if entity.ProgramStatus != domain.ProgramStatusSuspended {
		return apperror.Validation(fmt.Sprintf("program cannot be reactivated from status %s", entity.ProgramStatus))
	}
	if entity.RiskScore < domain.RiskThreshold {
		return apperror.ErrRiskGate("risk score has not recovered")
	}

	if entity.ProgramID != "" {
		if err := s.banking.UnfreezeProgram(ctx, entity.ProgramID); err != nil {
			return apperror.InternalError(fmt.Errorf("unfreeze banking program: %w", err))
		}
	}

	if err := s.complianceRepo.UpdateProgramStatus(ctx, entityID, domain.ProgramStatusActive); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    &actor.ID,
		ActorRole:  string(actor.Role),
		Action:     domain.AuditActionRiskFreezeCleared,
		TargetID:   entityID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"score":%d}`, entity.RiskScore),
		IPAddress:  origin.IPAddress,
		UserAgent:  origin.UserAgent,
	}); err != nil {
		return err
	}
	return nil
}

// HandleSubscriptionEvent applies a billing lifecycle notification and
// recomputes risk where the signal set changed.
func (s *ComplianceServiceImpl) HandleSubscriptionEvent(ctx context.Context, entityID uuid.UUID, event ports.SubscriptionEvent, origin domain.RequestOrigin) error {
	entity, err := s.complianceRepo.GetByID(ctx, entityID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if entity == nil {
		return apperror.ErrNotFound("company")
	}

	switch event {
	case ports.SubscriptionStarted:
		if err := s.complianceRepo.SetSubscription(ctx, entityID, true); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionSubscriptionStarted,
			TargetID:   entityID.String(),
			TargetType: "company",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return err
		}
		s.fireTrigger(ctx, domain.TriggerSubscriptionStarted, domain.ActionContext{CompanyID: entityID})

	case ports.SubscriptionPaymentOK:
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionPaymentSucceeded,
			TargetID:   entityID.String(),
			TargetType: "company",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return err
		}
		return nil

	case ports.SubscriptionPaymentFail:
		if err := s.complianceRepo.IncrementPaymentFailures(ctx, entityID); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionPaymentFailed,
			TargetID:   entityID.String(),
			TargetType: "company",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return err
		}
		s.fireTrigger(ctx, domain.TriggerPaymentFailed, domain.ActionContext{CompanyID: entityID})

	case ports.SubscriptionCanceled:
		if err := s.complianceRepo.SetSubscription(ctx, entityID, false); err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
			Action:     domain.AuditActionSubscriptionCancelled,
			TargetID:   entityID.String(),
			TargetType: "company",
			IPAddress:  origin.IPAddress,
			UserAgent:  origin.UserAgent,
		}); err != nil {
			return err
		}

	default:
		return apperror.Validation(fmt.Sprintf("unknown subscription event: %s", event))
	}

	if _, err := s.RecomputeRisk(ctx, entityID, "subscription_"+string(event)); err != nil {
		s.log.Warn().Err(err).Str("company_id", entityID.String()).Msg("risk recompute after subscription event failed")
	}
	return nil
}
