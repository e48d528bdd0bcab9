package ports

import (
	"context"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuditQuery filters a ledger read. Results are most-recent-first.
type AuditQuery struct {
	ActorID  *uuid.UUID
	Action   *domain.AuditAction
	TargetID *string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// AuditLedger is the append-only store for audit records. Append is the only
// mutation; there is no update or delete.
type AuditLedger interface {
	Append(ctx context.Context, rec *domain.AuditRecord) error
	Query(ctx context.Context, q AuditQuery) ([]domain.AuditRecord, error)
}

// IdentityRepository defines persistence operations for user identities.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.UserIdentity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserIdentity, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserIdentity, error)
	UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id uuid.UUID) error
	SetStepUp(ctx context.Context, id uuid.UUID, enabled bool, secretEnc string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdentityStatus) error
}

// RiskTransition is the outcome of a compare-and-set risk update.
type RiskTransition struct {
	Applied       bool // false: a concurrent writer won; emit nothing
	PreviousScore int
	NewScore      int
	Frozen        bool // crossed below threshold this transition
	Recovered     bool // crossed back above threshold this transition
}

// ComplianceRepository defines persistence operations for tenant compliance
// entities. ApplyRiskTransition enforces at-most-one-writer-per-entity via a
// compare-and-set on the stored score and program status.
type ComplianceRepository interface {
	Create(ctx context.Context, entity *domain.ComplianceEntity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceEntity, error)
	ApplyRiskTransition(ctx context.Context, id uuid.UUID, prevScore int, prevStatus domain.ProgramStatus, newScore int, newStatus domain.ProgramStatus) (bool, error)
	UpdateKYB(ctx context.Context, entity *domain.ComplianceEntity) error
	SetSubscription(ctx context.Context, id uuid.UUID, active bool) error
	IncrementPaymentFailures(ctx context.Context, id uuid.UUID) error
	SetProgram(ctx context.Context, id uuid.UUID, programID string, status domain.ProgramStatus) error
	UpdateProgramStatus(ctx context.Context, id uuid.UUID, status domain.ProgramStatus) error
}

// SessionStore holds per-session authentication state. Step-up verification
// is session-scoped and never outlives the session.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	MarkStepUpVerified(ctx context.Context, sessionID string) error
	// Delete removes the session, reporting whether it existed.
	Delete(ctx context.Context, sessionID string) (bool, error)
	// RevokeAll removes every session for the identity, forcing re-login and
	// step-up re-verification.
	RevokeAll(ctx context.Context, identityID uuid.UUID) error
}

// DelayQueue is the durable queue for delayed automation actions. Entries
// survive process restarts; once enqueued they cannot be withdrawn.
type DelayQueue interface {
	Enqueue(ctx context.Context, task *domain.ScheduledAction) error
	// PollDue atomically pops up to limit actions whose ready time has passed.
	PollDue(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledAction, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// HealthChecker verifies connectivity of an external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
