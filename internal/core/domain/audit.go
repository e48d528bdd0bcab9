package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the closed set of action codes the ledger accepts.
// Appending with a code outside this list is rejected, not silently logged.
type AuditAction string

const (
	// Authentication
	AuditActionLoginSuccess AuditAction = "LOGIN_SUCCESS"
	AuditActionLoginFailed  AuditAction = "LOGIN_FAILED"
	AuditActionLoginBlocked AuditAction = "LOGIN_BLOCKED"
	AuditActionLogout       AuditAction = "LOGOUT"
	AuditActionStepUpOK     AuditAction = "2FA_SUCCESS"
	AuditActionStepUpFailed AuditAction = "2FA_FAILED"
	AuditActionStepUpOn     AuditAction = "2FA_ENABLED"
	AuditActionStepUpOff    AuditAction = "2FA_DISABLED"

	// Password management
	AuditActionResetRequested   AuditAction = "PASSWORD_RESET_REQUESTED"
	AuditActionResetSuccess     AuditAction = "PASSWORD_RESET_SUCCESS"
	AuditActionResetFailed      AuditAction = "PASSWORD_RESET_FAILED"
	AuditActionResetInvalidated AuditAction = "RESET_TOKEN_INVALIDATED"
	AuditActionPasswordChanged  AuditAction = "PASSWORD_CHANGED"

	// Client management
	AuditActionClientCreated     AuditAction = "CLIENT_CREATED"
	AuditActionClientSuspended   AuditAction = "CLIENT_SUSPENDED"
	AuditActionClientTerminated  AuditAction = "CLIENT_TERMINATED"
	AuditActionClientReactivated AuditAction = "CLIENT_REACTIVATED"

	// Program management
	AuditActionProgramCreated     AuditAction = "PROGRAM_CREATED"
	AuditActionProgramSuspended   AuditAction = "PROGRAM_SUSPENDED"
	AuditActionProgramTerminated  AuditAction = "PROGRAM_TERMINATED"
	AuditActionProgramReactivated AuditAction = "PROGRAM_REACTIVATED"

	// Risk & compliance
	AuditActionRiskOverride        AuditAction = "RISK_OVERRIDE"
	AuditActionRiskFreezeTriggered AuditAction = "RISK_FREEZE_TRIGGERED"
	AuditActionRiskFreezeCleared   AuditAction = "RISK_FREEZE_CLEARED"
	AuditActionKYBSubmitted        AuditAction = "KYB_SUBMITTED"
	AuditActionKYBApproved         AuditAction = "KYB_APPROVED"
	AuditActionKYBRejected         AuditAction = "KYB_REJECTED"

	// Financial
	AuditActionSubscriptionStarted   AuditAction = "SUBSCRIPTION_STARTED"
	AuditActionSubscriptionCancelled AuditAction = "SUBSCRIPTION_CANCELLED"
	AuditActionPaymentSucceeded      AuditAction = "PAYMENT_SUCCEEDED"
	AuditActionPaymentFailed         AuditAction = "PAYMENT_FAILED"

	// Banking
	AuditActionBankProgramCreated AuditAction = "UNIT_PROGRAM_CREATED"
	AuditActionCardIssued         AuditAction = "UNIT_CARD_ISSUED"
	AuditActionCardFrozen         AuditAction = "UNIT_CARD_FROZEN"
	AuditActionCardUnfrozen       AuditAction = "UNIT_CARD_UNFROZEN"

	// Automation
	AuditActionAutomationTriggered AuditAction = "AUTOMATION_TRIGGERED"

	// Admin
	AuditActionAdminOverride   AuditAction = "ADMIN_OVERRIDE"
	AuditActionUserCreated     AuditAction = "USER_CREATED"
	AuditActionUserRoleChanged AuditAction = "USER_ROLE_CHANGED"
	AuditActionAuditViewed     AuditAction = "AUDIT_VIEWED"
)

var validAuditActions = map[AuditAction]struct{}{
	AuditActionLoginSuccess: {}, AuditActionLoginFailed: {}, AuditActionLoginBlocked: {},
	AuditActionLogout: {}, AuditActionStepUpOK: {}, AuditActionStepUpFailed: {},
	AuditActionStepUpOn: {}, AuditActionStepUpOff: {},
	AuditActionResetRequested: {}, AuditActionResetSuccess: {}, AuditActionResetFailed: {},
	AuditActionResetInvalidated: {}, AuditActionPasswordChanged: {},
	AuditActionClientCreated: {}, AuditActionClientSuspended: {},
	AuditActionClientTerminated: {}, AuditActionClientReactivated: {},
	AuditActionProgramCreated: {}, AuditActionProgramSuspended: {},
	AuditActionProgramTerminated: {}, AuditActionProgramReactivated: {},
	AuditActionRiskOverride: {}, AuditActionRiskFreezeTriggered: {}, AuditActionRiskFreezeCleared: {},
	AuditActionKYBSubmitted: {}, AuditActionKYBApproved: {}, AuditActionKYBRejected: {},
	AuditActionSubscriptionStarted: {}, AuditActionSubscriptionCancelled: {},
	AuditActionPaymentSucceeded: {}, AuditActionPaymentFailed: {},
	AuditActionBankProgramCreated: {}, AuditActionCardIssued: {},
	AuditActionCardFrozen: {}, AuditActionCardUnfrozen: {},
	AuditActionAutomationTriggered: {},
	AuditActionAdminOverride:       {}, AuditActionUserCreated: {},
	AuditActionUserRoleChanged: {}, AuditActionAuditViewed: {},
}

// Valid reports whether the action is part of the authoritative list.
func (a AuditAction) Valid() bool {
	_, ok := validAuditActions[a]
	return ok
}

// AuditRecord is a single ledger entry. Once appended no field may change;
// the ledger exposes only append and read.
type AuditRecord struct {
	ID         string      `json:"id"` // ULID, sortable
	ActorID    *uuid.UUID  `json:"actor_id,omitempty"`
	ActorRole  string      `json:"actor_role,omitempty"` // role snapshot at time of action
	Action     AuditAction `json:"action"`
	TargetID   string      `json:"target_id,omitempty"`
	TargetType string      `json:"target_type,omitempty"`
	Details    string      `json:"details,omitempty"` // JSON string
	IPAddress  string      `json:"ip_address,omitempty"`
	UserAgent  string      `json:"user_agent,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	ReadOnly   bool        `json:"readonly"` // always true
}

// RequestOrigin captures where a request came from, for evidence.
type RequestOrigin struct {
	IPAddress string
	UserAgent string
}
