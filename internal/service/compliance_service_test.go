package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/core/ports/mocks"
	"partner-trust-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type complianceServiceMocks struct {
	complianceRepo *mocks.MockComplianceRepository
	auditSvc       *mocks.MockAuditService
	automationSvc  *mocks.MockAutomationService
	banking        *mocks.MockBankingGateway
}

func setupComplianceService(t *testing.T) (*ComplianceServiceImpl, complianceServiceMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := complianceServiceMocks{
		complianceRepo: mocks.NewMockComplianceRepository(ctrl),
		auditSvc:       mocks.NewMockAuditService(ctrl),
		automationSvc:  mocks.NewMockAutomationService(ctrl),
		banking:        mocks.NewMockBankingGateway(ctrl),
	}
	svc := NewComplianceService(m.complianceRepo, m.auditSvc, m.automationSvc, m.banking, zerolog.Nop())
	return svc, m, ctrl
}

func adminActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Role: domain.RolePlatformAdmin, Status: domain.IdentityStatusActive}
}

func verifiedSession(actor domain.Actor) *domain.Session {
	return &domain.Session{
		ID:             "01SESSION",
		IdentityID:     actor.ID,
		Role:           actor.Role,
		RequiresStepUp: true,
		StepUpVerified: true,
	}
}

func validSubmission() domain.KYBSubmission {
	return domain.KYBSubmission{
		BusinessName: "Acme Logistics",
		TaxID:        "12-3456789",
		Address:      "1 Main St",
		OwnerName:    "Pat Doe",
		Email:        "pat@acme.example",
	}
}

func TestComplianceService_SubmitKYB_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusPending}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().UpdateKYB(ctx, gomock.Any()).
		Do(func(_ context.Context, e *domain.ComplianceEntity) {
			assert.Equal(t, domain.KYBStatusSubmitted, e.KYBStatus)
			assert.NotNil(t, e.KYBSubmittedAt)
			assert.Equal(t, "Acme Logistics", e.Name)
		}).
		Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionKYBSubmitted)).Return("01A", nil)

	require.NoError(t, svc.SubmitKYB(ctx, entityID, validSubmission(), domain.RequestOrigin{}))
}

func TestComplianceService_SubmitKYB_MissingField(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusPending}
	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)

	sub := validSubmission()
	sub.TaxID = ""

	err := svc.SubmitKYB(ctx, entityID, sub, domain.RequestOrigin{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CMP_001", appErr.Code)
	assert.Contains(t, appErr.Message, "tax_id")
}

func TestComplianceService_SubmitKYB_AlreadyApproved(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusApproved}
	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)

	err := svc.SubmitKYB(ctx, entityID, validSubmission(), domain.RequestOrigin{})
	require.Error(t, err)
}

func TestComplianceService_SubmitKYB_ResubmitAfterRejection(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:              entityID,
		KYBStatus:       domain.KYBStatusRejected,
		KYBRejectReason: "blurry documents",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().UpdateKYB(ctx, gomock.Any()).
		Do(func(_ context.Context, e *domain.ComplianceEntity) {
			assert.Equal(t, domain.KYBStatusSubmitted, e.KYBStatus)
			assert.Empty(t, e.KYBRejectReason)
		}).
		Return(nil)
	m.auditSvc.EXPECT().Append(ctx, gomock.Any()).Return("01A", nil)

	require.NoError(t, svc.SubmitKYB(ctx, entityID, validSubmission(), domain.RequestOrigin{}))
}

func TestComplianceService_ApproveKYB_RequiresGodModeAndStepUp(t *testing.T) {
	svc, _, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()

	// Operator, even step-up verified, is denied.
	operator := domain.Actor{ID: uuid.New(), Role: domain.RoleOperator, Status: domain.IdentityStatusActive}
	err := svc.ApproveKYB(ctx, operator, verifiedSession(operator), entityID, domain.RequestOrigin{})
	require.Error(t, err)

	// Admin without step-up verification is denied with the same error.
	admin := adminActor()
	unverified := verifiedSession(admin)
	unverified.StepUpVerified = false
	err2 := svc.ApproveKYB(ctx, admin, unverified, entityID, domain.RequestOrigin{})
	require.Error(t, err2)

	var appErr1, appErr2 *apperror.AppError
	require.True(t, errors.As(err, &appErr1))
	require.True(t, errors.As(err2, &appErr2))
	assert.Equal(t, appErr1.Code, appErr2.Code)
	assert.Equal(t, "AUTH_005", appErr1.Code)
}

func TestComplianceService_ApproveKYB_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusSubmitted}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil).Times(2)
	m.complianceRepo.EXPECT().UpdateKYB(ctx, gomock.Any()).
		Do(func(_ context.Context, e *domain.ComplianceEntity) {
			assert.Equal(t, domain.KYBStatusApproved, e.KYBStatus)
			assert.NotNil(t, e.KYBApprovedAt)
		}).
		Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionKYBApproved)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerKYBApproved, gomock.Any()).Return(nil)
	// Recompute after approval: pending program, no freeze possible.
	m.complianceRepo.EXPECT().ApplyRiskTransition(ctx, entityID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, svc.ApproveKYB(ctx, admin, verifiedSession(admin), entityID, domain.RequestOrigin{}))
}

func TestComplianceService_RejectKYB_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusSubmitted}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().UpdateKYB(ctx, gomock.Any()).
		Do(func(_ context.Context, e *domain.ComplianceEntity) {
			assert.Equal(t, domain.KYBStatusRejected, e.KYBStatus)
			assert.Equal(t, "documents unreadable", e.KYBRejectReason)
		}).
		Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionKYBRejected)).Return("01A", nil)

	require.NoError(t, svc.RejectKYB(ctx, admin, verifiedSession(admin), entityID, "documents unreadable", domain.RequestOrigin{}))
}

func TestComplianceService_RejectKYB_ReasonRequired(t *testing.T) {
	svc, _, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	admin := adminActor()
	err := svc.RejectKYB(context.Background(), admin, verifiedSession(admin), uuid.New(), "", domain.RequestOrigin{})
	require.Error(t, err)
}

func TestComplianceService_RecomputeRisk_FreezesOnCrossing(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()

	// KYB approved (+30), subscription (+20), chargebacks (-25) = 25 < 50.
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		Chargebacks:   3,
		RiskScore:     55,
		ProgramStatus: domain.ProgramStatusActive,
		ProgramID:     "prog_123",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().
		ApplyRiskTransition(ctx, entityID, 55, domain.ProgramStatusActive, 25, domain.ProgramStatusSuspended).
		Return(true, nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionRiskFreezeTriggered)).Return("01A", nil)
	m.banking.EXPECT().FreezeProgram(ctx, "prog_123", "chargeback_sync").Return(nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerRiskScoreDrop, gomock.Any()).Return(nil)

	transition, err := svc.RecomputeRisk(ctx, entityID, "chargeback_sync")
	require.NoError(t, err)

	assert.True(t, transition.Applied)
	assert.True(t, transition.Frozen)
	assert.Equal(t, 55, transition.PreviousScore)
	assert.Equal(t, 25, transition.NewScore)
}

func TestComplianceService_RecomputeRisk_LostRaceEmitsNothing(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		Chargebacks:   3,
		RiskScore:     55,
		ProgramStatus: domain.ProgramStatusActive,
		ProgramID:     "prog_123",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().
		ApplyRiskTransition(ctx, entityID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	// No audit, no freeze, no trigger: the concurrent writer already did it.

	transition, err := svc.RecomputeRisk(ctx, entityID, "replay")
	require.NoError(t, err)
	assert.False(t, transition.Applied)
	assert.False(t, transition.Frozen)
}

func TestComplianceService_RecomputeRisk_RecoveryNotifiesOnly(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()

	// KYB (+30), subscription (+20), admin approved (+25) = 75 >= 50, but the
	// program stays suspended until an admin reactivates it.
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		AdminApproved: true,
		RiskScore:     25,
		ProgramStatus: domain.ProgramStatusSuspended,
		ProgramID:     "prog_123",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().
		ApplyRiskTransition(ctx, entityID, 25, domain.ProgramStatusSuspended, 75, domain.ProgramStatusSuspended).
		Return(true, nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerRiskScoreRecovered, gomock.Any()).Return(nil)
	// No UnfreezeProgram call: recovery never unfreezes automatically.

	transition, err := svc.RecomputeRisk(ctx, entityID, "chargeback_resolved")
	require.NoError(t, err)
	assert.True(t, transition.Applied)
	assert.True(t, transition.Recovered)
	assert.False(t, transition.Frozen)
}

func TestComplianceService_RecomputeRisk_RefreezesAfterRecovery(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()

	// Post-recovery state: score back at 55 but the program is still
	// suspended (recovery never reactivates). New chargebacks drop the score
	// below the threshold again: KYB (+30) + subscription (+20) +
	// chargebacks (-25) = 25. The second crossing must fire its own freeze
	// event even though the status cannot change any further.
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		Chargebacks:   3,
		RiskScore:     55,
		ProgramStatus: domain.ProgramStatusSuspended,
		ProgramID:     "prog_123",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().
		ApplyRiskTransition(ctx, entityID, 55, domain.ProgramStatusSuspended, 25, domain.ProgramStatusSuspended).
		Return(true, nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionRiskFreezeTriggered)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerRiskScoreDrop, gomock.Any()).Return(nil)
	// No FreezeProgram call: the provider was frozen on the first crossing
	// and the status never left suspended.

	transition, err := svc.RecomputeRisk(ctx, entityID, "new_chargebacks")
	require.NoError(t, err)
	assert.True(t, transition.Applied)
	assert.True(t, transition.Frozen)
	assert.False(t, transition.Recovered)
}

func TestComplianceService_EnforceGates(t *testing.T) {
	base := func() *domain.ComplianceEntity {
		return &domain.ComplianceEntity{
			ID:            uuid.New(),
			KYBStatus:     domain.KYBStatusApproved,
			Subscription:  true,
			Tier:          domain.TierGrowth,
			RiskScore:     75,
			ProgramStatus: domain.ProgramStatusActive,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.ComplianceEntity)
		enforce func(*ComplianceServiceImpl, context.Context, uuid.UUID) error
		wantErr bool
	}{
		{
			name:    "kyb approved passes",
			mutate:  func(e *domain.ComplianceEntity) {},
			enforce: (*ComplianceServiceImpl).EnforceKYB,
		},
		{
			name:    "kyb pending fails",
			mutate:  func(e *domain.ComplianceEntity) { e.KYBStatus = domain.KYBStatusPending },
			enforce: (*ComplianceServiceImpl).EnforceKYB,
			wantErr: true,
		},
		{
			name:    "healthy score passes",
			mutate:  func(e *domain.ComplianceEntity) {},
			enforce: (*ComplianceServiceImpl).EnforceRiskScore,
		},
		{
			name:    "low score fails",
			mutate:  func(e *domain.ComplianceEntity) { e.RiskScore = 49 },
			enforce: (*ComplianceServiceImpl).EnforceRiskScore,
			wantErr: true,
		},
		{
			name:    "frozen program fails even with good score",
			mutate:  func(e *domain.ComplianceEntity) { e.ProgramStatus = domain.ProgramStatusSuspended },
			enforce: (*ComplianceServiceImpl).EnforceRiskScore,
			wantErr: true,
		},
		{
			name:    "growth tier passes card gate",
			mutate:  func(e *domain.ComplianceEntity) {},
			enforce: (*ComplianceServiceImpl).EnforceCardIssuanceTier,
		},
		{
			name:    "starter tier fails card gate",
			mutate:  func(e *domain.ComplianceEntity) { e.Tier = domain.TierStarter },
			enforce: (*ComplianceServiceImpl).EnforceCardIssuanceTier,
			wantErr: true,
		},
		{
			name:    "active subscription passes",
			mutate:  func(e *domain.ComplianceEntity) {},
			enforce: (*ComplianceServiceImpl).EnforceSubscription,
		},
		{
			name:    "lapsed subscription fails",
			mutate:  func(e *domain.ComplianceEntity) { e.Subscription = false },
			enforce: (*ComplianceServiceImpl).EnforceSubscription,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, ctrl := setupComplianceService(t)
			defer ctrl.Finish()

			entity := base()
			tt.mutate(entity)
			m.complianceRepo.EXPECT().GetByID(gomock.Any(), entity.ID).Return(entity, nil)

			err := tt.enforce(svc, context.Background(), entity.ID)
			if tt.wantErr {
				require.Error(t, err)
				var appErr *apperror.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, "RISK_001", appErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestComplianceService_ProvisionProgram_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusPending,
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.banking.EXPECT().CreateProgram(ctx, entity).Return("prog_new", nil)
	m.complianceRepo.EXPECT().SetProgram(ctx, entityID, "prog_new", domain.ProgramStatusActive).Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionBankProgramCreated)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerProgramLaunched, gomock.Any()).Return(nil)

	programID, err := svc.ProvisionProgram(ctx, admin, verifiedSession(admin), entityID, domain.RequestOrigin{})
	require.NoError(t, err)
	assert.Equal(t, "prog_new", programID)
}

func TestComplianceService_ProvisionProgram_GateFailureBlocksBankingCall(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  false, // gate fails here
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusPending,
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	// No CreateProgram expectation: the gateway is never reached.

	_, err := svc.ProvisionProgram(ctx, admin, verifiedSession(admin), entityID, domain.RequestOrigin{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RISK_001", appErr.Code)
}

func TestComplianceService_IssueCard_StarterTierBlocked(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		Tier:          domain.TierStarter,
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusActive,
		ProgramID:     "prog_1",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)

	_, err := svc.IssueCard(ctx, admin, verifiedSession(admin), entityID, ports.CardRequest{}, domain.RequestOrigin{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RISK_001", appErr.Code)
}

func TestComplianceService_IssueCard_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		Tier:          domain.TierScale,
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusActive,
		ProgramID:     "prog_1",
	}
	req := ports.CardRequest{CardholderName: "Pat Doe", SpendingLimit: 500000}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.banking.EXPECT().IssueCard(ctx, "prog_1", req).Return("card_9", nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionCardIssued)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerCardIssued, gomock.Any()).Return(nil)

	cardID, err := svc.IssueCard(ctx, admin, verifiedSession(admin), entityID, req, domain.RequestOrigin{})
	require.NoError(t, err)
	assert.Equal(t, "card_9", cardID)
}

func TestComplianceService_ReactivateProgram_RequiresRecoveredScore(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		RiskScore:     30,
		ProgramStatus: domain.ProgramStatusSuspended,
		ProgramID:     "prog_1",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)

	err := svc.ReactivateProgram(ctx, admin, verifiedSession(admin), entityID, domain.RequestOrigin{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RISK_001", appErr.Code)
}

func TestComplianceService_ReactivateProgram_Success(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := adminActor()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusSuspended,
		ProgramID:     "prog_1",
	}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.banking.EXPECT().UnfreezeProgram(ctx, "prog_1").Return(nil)
	m.complianceRepo.EXPECT().UpdateProgramStatus(ctx, entityID, domain.ProgramStatusActive).Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionRiskFreezeCleared)).Return("01A", nil)

	require.NoError(t, svc.ReactivateProgram(ctx, admin, verifiedSession(admin), entityID, domain.RequestOrigin{}))
}

func TestComplianceService_HandleSubscriptionEvent_Started(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusApproved}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil).Times(2)
	m.complianceRepo.EXPECT().SetSubscription(ctx, entityID, true).Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionSubscriptionStarted)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerSubscriptionStarted, gomock.Any()).Return(nil)
	m.complianceRepo.EXPECT().ApplyRiskTransition(ctx, entityID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, svc.HandleSubscriptionEvent(ctx, entityID, ports.SubscriptionStarted, domain.RequestOrigin{}))
}

func TestComplianceService_HandleSubscriptionEvent_PaymentFailed(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, KYBStatus: domain.KYBStatusApproved, Subscription: true}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil).Times(2)
	m.complianceRepo.EXPECT().IncrementPaymentFailures(ctx, entityID).Return(nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionPaymentFailed)).Return("01A", nil)
	m.automationSvc.EXPECT().Trigger(ctx, domain.TriggerPaymentFailed, gomock.Any()).Return(nil)
	m.complianceRepo.EXPECT().ApplyRiskTransition(ctx, entityID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, svc.HandleSubscriptionEvent(ctx, entityID, ports.SubscriptionPaymentFail, domain.RequestOrigin{}))
}

func TestComplianceService_HandleSubscriptionEvent_PaymentOKNoRecompute(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	entity := &domain.ComplianceEntity{ID: entityID, Subscription: true}

	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.auditSvc.EXPECT().Append(ctx, auditAction(domain.AuditActionPaymentSucceeded)).Return("01A", nil)

	require.NoError(t, svc.HandleSubscriptionEvent(ctx, entityID, ports.SubscriptionPaymentOK, domain.RequestOrigin{}))
}

func TestComplianceService_HandleSubscriptionEvent_Unknown(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(&domain.ComplianceEntity{ID: entityID}, nil)

	err := svc.HandleSubscriptionEvent(ctx, entityID, ports.SubscriptionEvent("refunded"), domain.RequestOrigin{})
	require.Error(t, err)
}

func TestComplianceService_HandleSubscriptionEvent_UnknownEntity(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(nil, nil)

	err := svc.HandleSubscriptionEvent(ctx, entityID, ports.SubscriptionStarted, domain.RequestOrigin{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RES_001", appErr.Code)
}

func TestComplianceService_RecomputeRisk_UpdatesLastCheck(t *testing.T) {
	svc, m, ctrl := setupComplianceService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entityID := uuid.New()
	activated := time.Now().UTC().Add(-100 * 24 * time.Hour)
	entity := &domain.ComplianceEntity{
		ID:            entityID,
		KYBStatus:     domain.KYBStatusApproved,
		Subscription:  true,
		AdminApproved: true,
		ActivatedAt:   &activated,
		RiskScore:     75,
		ProgramStatus: domain.ProgramStatusActive,
	}

	// 30 + 20 + 25 + 10 (tenure) = 85, no crossing.
	m.complianceRepo.EXPECT().GetByID(ctx, entityID).Return(entity, nil)
	m.complianceRepo.EXPECT().
		ApplyRiskTransition(ctx, entityID, 75, domain.ProgramStatusActive, 85, domain.ProgramStatusActive).
		Return(true, nil)

	transition, err := svc.RecomputeRisk(ctx, entityID, "nightly")
	require.NoError(t, err)
	assert.True(t, transition.Applied)
	assert.Equal(t, 85, transition.NewScore)
	assert.False(t, transition.Frozen)
	assert.False(t, transition.Recovered)
}
