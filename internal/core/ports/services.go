package ports

import (
	"context"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption of secrets at
// rest (step-up TOTP secrets).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles credential hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService issues and validates session tokens (HS256 JWT).
type TokenService interface {
	Generate(session *domain.Session) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	SessionID  string
	IdentityID uuid.UUID
	Role       domain.Role
}

// StepUpService handles TOTP secret provisioning and verification.
type StepUpService interface {
	// GenerateSecret returns a new base32 secret and its otpauth URL.
	GenerateSecret(accountEmail string) (secret string, otpauthURL string, err error)
	// Verify checks a code against the secret, allowing one time-step of
	// clock skew.
	Verify(code string, secret string) bool
}

// --- Service ports (business logic) ---

// AuditService is the audit ledger facade. Append is synchronous and durable
// before return; a failed write is reported, never swallowed.
type AuditService interface {
	Append(ctx context.Context, entry *domain.AuditRecord) (string, error)
	Query(ctx context.Context, q AuditQuery) ([]domain.AuditRecord, error)
	// ViewAll is the privileged bulk read. It requires god mode and records
	// the access itself in the ledger.
	ViewAll(ctx context.Context, actor domain.Actor, origin domain.RequestOrigin, q AuditQuery) ([]domain.AuditRecord, error)
}

// LoginResult is the session data returned on successful login, with the
// token shown to the caller.
type LoginResult struct {
	Session *domain.Session
	Token   string
	Expiry  time.Time
}

// SessionService defines the credential and session lifecycle.
type SessionService interface {
	Login(ctx context.Context, email, password string, origin domain.RequestOrigin) (*LoginResult, error)
	VerifyStepUp(ctx context.Context, sessionID string, code string, origin domain.RequestOrigin) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string, origin domain.RequestOrigin) error
	RequestReset(ctx context.Context, email string, origin domain.RequestOrigin) (string, time.Time, error)
	ResetPassword(ctx context.Context, email, token, newPassword string, origin domain.RequestOrigin) error
	InvalidateResetToken(ctx context.Context, actor domain.Actor, targetID uuid.UUID, origin domain.RequestOrigin) error
	EnableStepUp(ctx context.Context, actor domain.Actor, setupCode string, secret string, origin domain.RequestOrigin) error
	DisableStepUp(ctx context.Context, actor domain.Actor, targetID uuid.UUID, origin domain.RequestOrigin) error
}

// CardRequest configures a card issuance call.
type CardRequest struct {
	CardholderName string
	SpendingLimit  int64 // minor units; 0 = program default
}

// ComplianceService defines the KYB workflow, risk state machine,
// enforcement gates and program lifecycle.
type ComplianceService interface {
	SubmitKYB(ctx context.Context, entityID uuid.UUID, sub domain.KYBSubmission, origin domain.RequestOrigin) error
	ApproveKYB(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) error
	RejectKYB(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, reason string, origin domain.RequestOrigin) error

	RecomputeRisk(ctx context.Context, entityID uuid.UUID, reason string) (*RiskTransition, error)

	EnforceKYB(ctx context.Context, entityID uuid.UUID) error
	EnforceRiskScore(ctx context.Context, entityID uuid.UUID) error
	EnforceCardIssuanceTier(ctx context.Context, entityID uuid.UUID) error
	EnforceSubscription(ctx context.Context, entityID uuid.UUID) error

	ProvisionProgram(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) (string, error)
	IssueCard(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, req CardRequest, origin domain.RequestOrigin) (string, error)
	ReactivateProgram(ctx context.Context, actor domain.Actor, session *domain.Session, entityID uuid.UUID, origin domain.RequestOrigin) error

	HandleSubscriptionEvent(ctx context.Context, entityID uuid.UUID, event SubscriptionEvent, origin domain.RequestOrigin) error
}

// SubscriptionEvent is a billing gateway lifecycle notification.
type SubscriptionEvent string

const (
	SubscriptionStarted     SubscriptionEvent = "started"
	SubscriptionPaymentOK   SubscriptionEvent = "payment_succeeded"
	SubscriptionPaymentFail SubscriptionEvent = "payment_failed"
	SubscriptionCanceled    SubscriptionEvent = "canceled"
)

// AutomationService reacts to domain events with declarative action chains.
type AutomationService interface {
	Trigger(ctx context.Context, trigger domain.Trigger, actx domain.ActionContext) error
}

// --- External collaborators ---

// BankingGateway is the external banking-as-a-service provider. The core
// checks every gate before calling it and treats returned identifiers as
// opaque.
type BankingGateway interface {
	CreateProgram(ctx context.Context, entity *domain.ComplianceEntity) (string, error)
	IssueCard(ctx context.Context, programID string, req CardRequest) (string, error)
	FreezeProgram(ctx context.Context, programID string, reason string) error
	UnfreezeProgram(ctx context.Context, programID string) error
}

// Notifier sends templated notifications. The core passes references, never
// formatted content.
type Notifier interface {
	SendEmail(ctx context.Context, template string, actx domain.ActionContext) error
	SendSMS(ctx context.Context, template string, actx domain.ActionContext) error
	NotifyAdmin(ctx context.Context, priority string, actx domain.ActionContext) error
}

// TaskService creates internal follow-up tasks.
type TaskService interface {
	Create(ctx context.Context, title string, dueDays int, actx domain.ActionContext) error
}

// CreditIssuer issues swag/discount credits.
type CreditIssuer interface {
	IssueCredit(ctx context.Context, amount int64, actx domain.ActionContext) error
	GenerateDiscount(ctx context.Context, actx domain.ActionContext) error
}
