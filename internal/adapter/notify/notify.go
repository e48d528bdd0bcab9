// Package notify holds the outbound collaborator implementations the
// automation engine drives. They log the dispatch and hand off to whatever
// backs them; swapping in a real email provider or CRM changes nothing in
// the core.
package notify

import (
	"context"

	"partner-trust-platform/internal/core/domain"

	"github.com/rs/zerolog"
)

// LogNotifier implements ports.Notifier by emitting structured log events.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendEmail dispatches a templated email.
func (n *LogNotifier) SendEmail(ctx context.Context, template string, actx domain.ActionContext) error {
	n.log.Info().
		Str("template", template).
		Str("company_id", actx.CompanyID.String()).
		Msg("Email dispatched")
	return nil
}

// SendSMS dispatches a templated SMS.
func (n *LogNotifier) SendSMS(ctx context.Context, template string, actx domain.ActionContext) error {
	n.log.Info().
		Str("template", template).
		Str("company_id", actx.CompanyID.String()).
		Msg("SMS dispatched")
	return nil
}

// NotifyAdmin raises an internal alert.
func (n *LogNotifier) NotifyAdmin(ctx context.Context, priority string, actx domain.ActionContext) error {
	evt := n.log.Info()
	if priority == "urgent" || priority == "high" {
		evt = n.log.Warn()
	}
	evt.
		Str("priority", priority).
		Str("company_id", actx.CompanyID.String()).
		Msg("Admin notified")
	return nil
}

// LogTaskService implements ports.TaskService by logging task creation.
type LogTaskService struct {
	log zerolog.Logger
}

// NewLogTaskService creates a log-backed task service.
func NewLogTaskService(log zerolog.Logger) *LogTaskService {
	return &LogTaskService{log: log}
}

// Create records a follow-up task.
func (s *LogTaskService) Create(ctx context.Context, title string, dueDays int, actx domain.ActionContext) error {
	s.log.Info().
		Str("title", title).
		Int("due_days", dueDays).
		Str("company_id", actx.CompanyID.String()).
		Msg("Task created")
	return nil
}

// LogCreditIssuer implements ports.CreditIssuer by logging credit grants.
type LogCreditIssuer struct {
	log zerolog.Logger
}

// NewLogCreditIssuer creates a log-backed credit issuer.
func NewLogCreditIssuer(log zerolog.Logger) *LogCreditIssuer {
	return &LogCreditIssuer{log: log}
}

// IssueCredit grants a swag credit in minor units.
func (c *LogCreditIssuer) IssueCredit(ctx context.Context, amount int64, actx domain.ActionContext) error {
	c.log.Info().
		Int64("amount", amount).
		Str("company_id", actx.CompanyID.String()).
		Msg("Swag credit issued")
	return nil
}

// GenerateDiscount creates a discount code.
func (c *LogCreditIssuer) GenerateDiscount(ctx context.Context, actx domain.ActionContext) error {
	c.log.Info().
		Str("company_id", actx.CompanyID.String()).
		Msg("Discount generated")
	return nil
}
