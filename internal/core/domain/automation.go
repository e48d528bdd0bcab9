package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trigger is the closed set of automation event codes. Adding a trigger is a
// compile-time decision, not a stringly-typed one.
type Trigger string

const (
	TriggerSubscriptionStarted Trigger = "SUBSCRIPTION_STARTED"
	TriggerPaymentFailed       Trigger = "PAYMENT_FAILED"
	TriggerProgramLaunched     Trigger = "PROGRAM_LAUNCHED"
	TriggerOrderDelivered      Trigger = "ORDER_DELIVERED"
	TriggerNoActivity30Days    Trigger = "NO_ACTIVITY_30_DAYS"
	TriggerRiskScoreDrop       Trigger = "RISK_SCORE_DROP"
	TriggerRiskScoreRecovered  Trigger = "RISK_SCORE_RECOVERED"
	TriggerKYBApproved         Trigger = "KYB_APPROVED"
	TriggerCardIssued          Trigger = "CARD_ISSUED"
)

// ActionType is the closed set of automation side effects.
type ActionType string

const (
	ActionSendEmail        ActionType = "SEND_EMAIL"
	ActionSendSMS          ActionType = "SEND_SMS"
	ActionCreateTask       ActionType = "CREATE_TASK"
	ActionIssueSwagCredit  ActionType = "ISSUE_SWAG_CREDIT"
	ActionGenerateDiscount ActionType = "GENERATE_DISCOUNT"
	ActionNotifyAdmin      ActionType = "NOTIFY_ADMIN"
	ActionPauseProgram     ActionType = "PAUSE_PROGRAM"
)

// AutomationAction is one step of a rule's chain. A positive Delay schedules
// the action on the durable queue without blocking later zero-delay steps.
type AutomationAction struct {
	Type     ActionType        `json:"type"`
	Template string            `json:"template,omitempty"` // email/SMS template code
	Params   map[string]string `json:"params,omitempty"`
	Delay    time.Duration     `json:"delay,omitempty"`
}

// ActionContext is the payload handed to collaborators. The engine never
// formats content; it passes references.
type ActionContext struct {
	CompanyID  uuid.UUID         `json:"company_id"`
	IdentityID *uuid.UUID        `json:"identity_id,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
}

// automationRules is the static rule table, loaded once, never mutated at
// runtime. Execution order within a rule is preserved.
var automationRules = map[Trigger][]AutomationAction{
	TriggerSubscriptionStarted: {
		{Type: ActionSendEmail, Template: "welcome"},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Onboarding Call", "due_days": "2"}},
		{Type: ActionIssueSwagCredit, Params: map[string]string{"amount": "150"}},
	},
	TriggerKYBApproved: {
		{Type: ActionSendEmail, Template: "kyb_approved"},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Program Setup", "due_days": "1"}},
	},
	TriggerProgramLaunched: {
		{Type: ActionSendEmail, Template: "program_live"},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Check-in 14 days", "due_days": "14"}, Delay: 14 * 24 * time.Hour},
	},
	TriggerPaymentFailed: {
		{Type: ActionSendEmail, Template: "payment_failed"},
		{Type: ActionNotifyAdmin, Params: map[string]string{"priority": "high"}},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Follow up on payment", "due_days": "1"}},
	},
	TriggerRiskScoreDrop: {
		{Type: ActionNotifyAdmin, Params: map[string]string{"priority": "urgent"}},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Review risk factors", "due_days": "0"}},
	},
	TriggerRiskScoreRecovered: {
		{Type: ActionNotifyAdmin, Params: map[string]string{"priority": "normal"}},
	},
	TriggerNoActivity30Days: {
		{Type: ActionSendEmail, Template: "check_in"},
		{Type: ActionCreateTask, Params: map[string]string{"title": "Re-engagement call", "due_days": "3"}},
	},
	TriggerOrderDelivered: {
		{Type: ActionSendEmail, Template: "order_delivered"},
	},
	TriggerCardIssued: {
		{Type: ActionSendEmail, Template: "card_issued"},
	},
}

// RulesFor returns the ordered action chain for a trigger. A missing trigger
// returns nil: the engine treats that as a no-op, not an error.
func RulesFor(t Trigger) []AutomationAction {
	rules := automationRules[t]
	out := make([]AutomationAction, len(rules))
	copy(out, rules)
	return out
}

// ScheduledAction is a delayed automation step persisted on the durable
// queue. Once enqueued it cannot be withdrawn.
type ScheduledAction struct {
	ID      string           `json:"id"` // ULID
	Trigger Trigger          `json:"trigger"`
	Action  AutomationAction `json:"action"`
	Context ActionContext    `json:"context"`
	ReadyAt time.Time        `json:"ready_at"`
}
