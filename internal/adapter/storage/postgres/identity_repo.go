package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IdentityRepo implements ports.IdentityRepository.
type IdentityRepo struct {
	pool Pool
}

// NewIdentityRepo creates a new IdentityRepo.
func NewIdentityRepo(pool Pool) *IdentityRepo {
	return &IdentityRepo{pool: pool}
}

const identityColumns = `id, email, password_hash, role, company_id, step_up_enabled, step_up_secret_enc, status, reset_token_hash, reset_token_expiry, created_at, updated_at`

// Create inserts a new identity.
func (r *IdentityRepo) Create(ctx context.Context, u *domain.UserIdentity) error {
	query := `INSERT INTO user_identities (id, email, password_hash, role, company_id, step_up_enabled, step_up_secret_enc, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.CompanyID,
		u.StepUpEnabled, u.StepUpSecretEnc, string(u.Status),
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

// GetByID fetches an identity by its UUID.
func (r *IdentityRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserIdentity, error) {
	query := `SELECT ` + identityColumns + ` FROM user_identities WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "id")
}

// GetByEmail fetches an identity by its normalized email.
func (r *IdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.UserIdentity, error) {
	query := `SELECT ` + identityColumns + ` FROM user_identities WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email), "email")
}

func (r *IdentityRepo) scanOne(row pgx.Row, by string) (*domain.UserIdentity, error) {
	u := &domain.UserIdentity{}
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CompanyID,
		&u.StepUpEnabled, &u.StepUpSecretEnc, &u.Status,
		&u.ResetTokenHash, &u.ResetTokenExpiry,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity by %s: %w", by, err)
	}
	return u, nil
}

// UpdateCredential replaces the password hash.
func (r *IdentityRepo) UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE user_identities SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

// SetResetToken stores the reset token hash and its expiry.
func (r *IdentityRepo) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	query := `UPDATE user_identities SET reset_token_hash=$1, reset_token_expiry=$2, updated_at=NOW() WHERE id=$3`
	_, err := r.pool.Exec(ctx, query, tokenHash, expiry, id)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

// ClearResetToken removes any outstanding reset token.
func (r *IdentityRepo) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE user_identities SET reset_token_hash=NULL, reset_token_expiry=NULL, updated_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("clear reset token: %w", err)
	}
	return nil
}

// SetStepUp enables or disables step-up verification. The secret arrives
// already encrypted; disabling clears it.
func (r *IdentityRepo) SetStepUp(ctx context.Context, id uuid.UUID, enabled bool, secretEnc string) error {
	query := `UPDATE user_identities SET step_up_enabled=$1, step_up_secret_enc=$2, updated_at=NOW() WHERE id=$3`
	_, err := r.pool.Exec(ctx, query, enabled, secretEnc, id)
	if err != nil {
		return fmt.Errorf("set step-up: %w", err)
	}
	return nil
}

// UpdateStatus changes the identity lifecycle state.
func (r *IdentityRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdentityStatus) error {
	query := `UPDATE user_identities SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update identity status: %w", err)
	}
	return nil
}
