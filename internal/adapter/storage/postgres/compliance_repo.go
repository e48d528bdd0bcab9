package postgres

import (
	"context"
	"errors"
	"fmt"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ComplianceRepo implements ports.ComplianceRepository.
type ComplianceRepo struct {
	pool Pool
}

// NewComplianceRepo creates a new ComplianceRepo.
func NewComplianceRepo(pool Pool) *ComplianceRepo {
	return &ComplianceRepo{pool: pool}
}

const complianceColumns = `id, name, kyb_status, kyb_submitted_at, kyb_approved_at, kyb_reject_reason, tax_id, business_address, admin_approved, subscription_active, tier, activated_at, chargebacks, chargeback_rate, volume_spike, payment_failures, risk_score, last_risk_check, program_status, program_id, created_at, updated_at`

// Create inserts a new compliance entity.
func (r *ComplianceRepo) Create(ctx context.Context, e *domain.ComplianceEntity) error {
	query := `INSERT INTO compliance_entities (id, name, kyb_status, tier, risk_score, program_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, string(e.KYBStatus), string(e.Tier),
		e.RiskScore, string(e.ProgramStatus), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compliance entity: %w", err)
	}
	return nil
}

// GetByID fetches a compliance entity by its UUID.
func (r *ComplianceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceEntity, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_entities WHERE id = $1`

	e := &domain.ComplianceEntity{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.KYBStatus, &e.KYBSubmittedAt, &e.KYBApprovedAt,
		&e.KYBRejectReason, &e.TaxID, &e.BusinessAddress, &e.AdminApproved,
		&e.Subscription, &e.Tier, &e.ActivatedAt,
		&e.Chargebacks, &e.ChargebackRate, &e.VolumeSpike, &e.PaymentFailures,
		&e.RiskScore, &e.LastRiskCheck, &e.ProgramStatus, &e.ProgramID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compliance entity by id: %w", err)
	}
	return e, nil
}

// ApplyRiskTransition performs the compare-and-set risk update. The WHERE
// clause pins both the score and program status the caller computed from, so
// two concurrent recomputations cannot both apply: the loser matches zero
// rows and must treat the transition as not applied.
func (r *ComplianceRepo) ApplyRiskTransition(ctx context.Context, id uuid.UUID, prevScore int, prevStatus domain.ProgramStatus, newScore int, newStatus domain.ProgramStatus) (bool, error) {
	query := `UPDATE compliance_entities
		SET risk_score=$1, program_status=$2, last_risk_check=NOW(), updated_at=NOW()
		WHERE id=$3 AND risk_score=$4 AND program_status=$5`

	tag, err := r.pool.Exec(ctx, query,
		newScore, string(newStatus), id, prevScore, string(prevStatus),
	)
	if err != nil {
		return false, fmt.Errorf("apply risk transition: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateKYB persists the verification workflow fields.
func (r *ComplianceRepo) UpdateKYB(ctx context.Context, e *domain.ComplianceEntity) error {
	query := `UPDATE compliance_entities
		SET name=$1, kyb_status=$2, kyb_submitted_at=$3, kyb_approved_at=$4, kyb_reject_reason=$5, tax_id=$6, business_address=$7, admin_approved=$8, updated_at=NOW()
		WHERE id=$9`

	_, err := r.pool.Exec(ctx, query,
		e.Name, string(e.KYBStatus), e.KYBSubmittedAt, e.KYBApprovedAt,
		e.KYBRejectReason, e.TaxID, e.BusinessAddress, e.AdminApproved, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update kyb: %w", err)
	}
	return nil
}

// SetSubscription flips the subscription flag. Activating for the first time
// also stamps activated_at, the anchor for the tenure risk signal.
func (r *ComplianceRepo) SetSubscription(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE compliance_entities
		SET subscription_active=$1,
		    activated_at=CASE WHEN $1 THEN COALESCE(activated_at, NOW()) ELSE activated_at END,
		    updated_at=NOW()
		WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}
	return nil
}

// IncrementPaymentFailures bumps the failed-payment counter.
func (r *ComplianceRepo) IncrementPaymentFailures(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE compliance_entities SET payment_failures=payment_failures+1, updated_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment payment failures: %w", err)
	}
	return nil
}

// SetProgram records the provisioned banking program.
func (r *ComplianceRepo) SetProgram(ctx context.Context, id uuid.UUID, programID string, status domain.ProgramStatus) error {
	query := `UPDATE compliance_entities
		SET program_id=$1, program_status=$2, activated_at=COALESCE(activated_at, NOW()), updated_at=NOW()
		WHERE id=$3`
	_, err := r.pool.Exec(ctx, query, programID, string(status), id)
	if err != nil {
		return fmt.Errorf("set program: %w", err)
	}
	return nil
}

// UpdateProgramStatus changes the program lifecycle state without touching
// the risk score.
func (r *ComplianceRepo) UpdateProgramStatus(ctx context.Context, id uuid.UUID, status domain.ProgramStatus) error {
	query := `UPDATE compliance_entities SET program_status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update program status: %w", err)
	}
	return nil
}
