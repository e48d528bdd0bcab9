package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdentityStatus is the lifecycle state of a user identity.
type IdentityStatus string

const (
	IdentityStatusActive     IdentityStatus = "active"
	IdentityStatusSuspended  IdentityStatus = "suspended"
	IdentityStatusTerminated IdentityStatus = "terminated"
)

// UserIdentity is a platform or client user. The step-up secret is stored
// AES-GCM encrypted; the step-up-verified flag lives on the session, never
// here.
type UserIdentity struct {
	ID               uuid.UUID      `json:"id"`
	Email            string         `json:"email"` // normalized lowercase
	PasswordHash     string         `json:"-"`
	Role             Role           `json:"role"`
	CompanyID        *uuid.UUID     `json:"company_id,omitempty"` // nil for platform-level roles
	StepUpEnabled    bool           `json:"step_up_enabled"`
	StepUpSecretEnc  string         `json:"-"` // encrypted TOTP secret
	Status           IdentityStatus `json:"status"`
	ResetTokenHash   *string        `json:"-"`
	ResetTokenExpiry *time.Time     `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsActive reports whether the identity may authenticate.
func (u *UserIdentity) IsActive() bool {
	return u.Status == IdentityStatusActive
}

// RequiresStepUp reports whether this identity must pass step-up
// verification: always for platform admins, otherwise when enabled.
func (u *UserIdentity) RequiresStepUp() bool {
	return u.Role.RequiresStepUp() || u.StepUpEnabled
}

// Actor is the immutable snapshot of who is performing an operation.
type Actor struct {
	ID     uuid.UUID
	Role   Role
	Status IdentityStatus
}

// Actor builds the snapshot used by authorization guards and ledger entries.
func (u *UserIdentity) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Status: u.Status}
}

// NormalizeEmail lowercases and trims an email address for lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is the per-session authentication state. The step-up-verified flag
// is session-scoped: it resets on logout and on password reset, and is never
// shared across concurrent sessions of the same identity.
type Session struct {
	ID             string    `json:"id"` // ULID
	IdentityID     uuid.UUID `json:"identity_id"`
	Role           Role      `json:"role"`
	RequiresStepUp bool      `json:"requires_step_up"`
	StepUpVerified bool      `json:"step_up_verified"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Authenticated reports whether the session has completed every required
// verification stage.
func (s *Session) Authenticated() bool {
	if s.RequiresStepUp {
		return s.StepUpVerified
	}
	return true
}
