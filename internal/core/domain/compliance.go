package domain

import (
	"time"

	"github.com/google/uuid"
)

// KYBStatus is the business-verification workflow state.
// Rejected is terminal until the client resubmits.
type KYBStatus string

const (
	KYBStatusPending   KYBStatus = "pending"
	KYBStatusSubmitted KYBStatus = "submitted"
	KYBStatusApproved  KYBStatus = "approved"
	KYBStatusRejected  KYBStatus = "rejected"
)

// ProgramStatus is the banking program lifecycle state.
type ProgramStatus string

const (
	ProgramStatusPending    ProgramStatus = "pending"
	ProgramStatusActive     ProgramStatus = "active"
	ProgramStatusSuspended  ProgramStatus = "suspended"
	ProgramStatusTerminated ProgramStatus = "terminated"
)

// Tier is the subscription tier. Card issuance requires growth or scale.
type Tier string

const (
	TierStarter Tier = "starter"
	TierGrowth  Tier = "growth"
	TierScale   Tier = "scale"
)

// RiskThreshold is the score below which a program is frozen.
const RiskThreshold = 50

// ComplianceEntity is a tenant company with its verification state, risk
// signals and banking program. The risk score is never hand-edited: it is
// always the output of ComputeRiskScore over the current signals.
type ComplianceEntity struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	KYBStatus       KYBStatus     `json:"kyb_status"`
	KYBSubmittedAt  *time.Time    `json:"kyb_submitted_at,omitempty"`
	KYBApprovedAt   *time.Time    `json:"kyb_approved_at,omitempty"`
	KYBRejectReason string        `json:"kyb_reject_reason,omitempty"`
	TaxID           string        `json:"tax_id,omitempty"`
	BusinessAddress string        `json:"business_address,omitempty"`
	AdminApproved   bool          `json:"admin_approved"`
	Subscription    bool          `json:"subscription_active"`
	Tier            Tier          `json:"tier"`
	ActivatedAt     *time.Time    `json:"activated_at,omitempty"`
	Chargebacks     int           `json:"chargebacks"`
	ChargebackRate  float64       `json:"chargeback_rate"`
	VolumeSpike     bool          `json:"volume_spike"`
	PaymentFailures int           `json:"payment_failures"`
	RiskScore       int           `json:"risk_score"`
	LastRiskCheck   *time.Time    `json:"last_risk_check,omitempty"`
	ProgramStatus   ProgramStatus `json:"program_status"`
	ProgramID       string        `json:"program_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// RiskSignals is the input to the pure scoring function, snapshotted from an
// entity at a point in time.
type RiskSignals struct {
	KYBApproved        bool
	SubscriptionActive bool
	AdminApproved      bool
	DaysActive         int
	Chargebacks        int
	ChargebackRate     float64
	VolumeSpike        bool
	PaymentFailures    int
}

// Signals snapshots the entity's current risk inputs as of now.
func (e *ComplianceEntity) Signals(now time.Time) RiskSignals {
	days := 0
	if e.ActivatedAt != nil {
		days = int(now.Sub(*e.ActivatedAt).Hours() / 24)
	}
	return RiskSignals{
		KYBApproved:        e.KYBStatus == KYBStatusApproved,
		SubscriptionActive: e.Subscription,
		AdminApproved:      e.AdminApproved,
		DaysActive:         days,
		Chargebacks:        e.Chargebacks,
		ChargebackRate:     e.ChargebackRate,
		VolumeSpike:        e.VolumeSpike,
		PaymentFailures:    e.PaymentFailures,
	}
}

// ComputeRiskScore is the deterministic scoring function. Higher is better.
// Replaying the same signal set always yields the same score.
func ComputeRiskScore(s RiskSignals) int {
	score := 0

	// Positive signals
	if s.KYBApproved {
		score += 30
	}
	if s.SubscriptionActive {
		score += 20
	}
	if s.AdminApproved {
		score += 25
	}
	if s.DaysActive > 90 {
		score += 10
	}

	// Negative signals
	if s.Chargebacks > 0 {
		score -= 25
	}
	if s.ChargebackRate > 0.009 {
		score -= 30
	}
	if s.VolumeSpike {
		score -= 15
	}
	if s.PaymentFailures > 2 {
		score -= 20
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// KYBSubmission carries the fields required to submit business verification.
type KYBSubmission struct {
	BusinessName string `json:"business_name"`
	TaxID        string `json:"tax_id"`
	Address      string `json:"address"`
	OwnerName    string `json:"owner_name"`
	Email        string `json:"email"`
}

// MissingField returns the name of the first empty required field, or "".
func (s KYBSubmission) MissingField() string {
	switch {
	case s.BusinessName == "":
		return "business_name"
	case s.TaxID == "":
		return "tax_id"
	case s.Address == "":
		return "address"
	case s.OwnerName == "":
		return "owner_name"
	case s.Email == "":
		return "email"
	}
	return ""
}

// CanResubmitKYB reports whether a new submission is allowed from the
// current status.
func (e *ComplianceEntity) CanResubmitKYB() bool {
	return e.KYBStatus == KYBStatusPending || e.KYBStatus == KYBStatusRejected
}
