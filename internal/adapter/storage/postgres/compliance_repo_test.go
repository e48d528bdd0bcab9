package postgres

import (
	"context"
	"testing"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntity() *domain.ComplianceEntity {
	return &domain.ComplianceEntity{
		ID:            uuid.New(),
		Name:          "Acme Fintech",
		KYBStatus:     domain.KYBStatusApproved,
		Tier:          domain.TierGrowth,
		RiskScore:     55,
		ProgramStatus: domain.ProgramStatusActive,
		ProgramID:     "prog_123",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func complianceTestColumns() []string {
	return []string{"id", "name", "kyb_status", "kyb_submitted_at", "kyb_approved_at", "kyb_reject_reason", "tax_id", "business_address", "admin_approved", "subscription_active", "tier", "activated_at", "chargebacks", "chargeback_rate", "volume_spike", "payment_failures", "risk_score", "last_risk_check", "program_status", "program_id", "created_at", "updated_at"}
}

func complianceRow(e *domain.ComplianceEntity) *pgxmock.Rows {
	return pgxmock.NewRows(complianceTestColumns()).AddRow(
		e.ID, e.Name, string(e.KYBStatus), e.KYBSubmittedAt, e.KYBApprovedAt,
		e.KYBRejectReason, e.TaxID, e.BusinessAddress, e.AdminApproved,
		e.Subscription, string(e.Tier), e.ActivatedAt,
		e.Chargebacks, e.ChargebackRate, e.VolumeSpike, e.PaymentFailures,
		e.RiskScore, e.LastRiskCheck, string(e.ProgramStatus), e.ProgramID,
		e.CreatedAt, e.UpdatedAt,
	)
}

func TestComplianceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	e := newTestEntity()

	mock.ExpectExec("INSERT INTO compliance_entities").
		WithArgs(e.ID, e.Name, string(e.KYBStatus), string(e.Tier),
			e.RiskScore, string(e.ProgramStatus), e.CreatedAt, e.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	e := newTestEntity()

	mock.ExpectQuery("SELECT .+ FROM compliance_entities WHERE id").
		WithArgs(e.ID).
		WillReturnRows(complianceRow(e))

	result, err := repo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.Equal(t, 55, result.RiskScore)
	assert.Equal(t, domain.ProgramStatusActive, result.ProgramStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM compliance_entities WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(complianceTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_ApplyRiskTransition_Applied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities").
		WithArgs(25, string(domain.ProgramStatusSuspended), id, 55, string(domain.ProgramStatusActive)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	applied, err := repo.ApplyRiskTransition(context.Background(), id,
		55, domain.ProgramStatusActive, 25, domain.ProgramStatusSuspended)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent writer already moved the score, so the pinned WHERE clause
// matches nothing and the caller must discard its transition.
func TestComplianceRepo_ApplyRiskTransition_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities").
		WithArgs(25, string(domain.ProgramStatusSuspended), id, 55, string(domain.ProgramStatusActive)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	applied, err := repo.ApplyRiskTransition(context.Background(), id,
		55, domain.ProgramStatusActive, 25, domain.ProgramStatusSuspended)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_UpdateKYB(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	e := newTestEntity()
	e.TaxID = "12-3456789"
	e.BusinessAddress = "1 Main St"

	mock.ExpectExec("UPDATE compliance_entities").
		WithArgs(e.Name, string(e.KYBStatus), e.KYBSubmittedAt, e.KYBApprovedAt,
			e.KYBRejectReason, e.TaxID, e.BusinessAddress, e.AdminApproved, e.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateKYB(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_SetSubscription(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities").
		WithArgs(true, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetSubscription(context.Background(), id, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_IncrementPaymentFailures(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities SET payment_failures").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.IncrementPaymentFailures(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_SetProgram(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities SET program_id").
		WithArgs("prog_456", string(domain.ProgramStatusActive), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetProgram(context.Background(), id, "prog_456", domain.ProgramStatusActive)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepo_UpdateProgramStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewComplianceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE compliance_entities SET program_status").
		WithArgs(string(domain.ProgramStatusSuspended), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateProgramStatus(context.Background(), id, domain.ProgramStatusSuspended)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
