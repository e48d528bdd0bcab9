package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
	"partner-trust-platform/internal/obs"
	"partner-trust-platform/pkg/ids"

	"github.com/rs/zerolog"
)

// AutomationServiceImpl implements ports.AutomationService. Rules come from
// the static table in the domain package; actions run in declared order, and
// a failing action is logged and skipped without stopping the chain.
type AutomationServiceImpl struct {
	queue          ports.DelayQueue
	auditSvc       ports.AuditService
	notifier       ports.Notifier
	tasks          ports.TaskService
	credits        ports.CreditIssuer
	complianceRepo ports.ComplianceRepository
	log            zerolog.Logger
}

// NewAutomationService creates a new AutomationServiceImpl.
func NewAutomationService(
	queue ports.DelayQueue,
	auditSvc ports.AuditService,
	notifier ports.Notifier,
	tasks ports.TaskService,
	credits ports.CreditIssuer,
	complianceRepo ports.ComplianceRepository,
	log zerolog.Logger,
) *AutomationServiceImpl {
	return &AutomationServiceImpl{
		queue:          queue,
		auditSvc:       auditSvc,
		notifier:       notifier,
		tasks:          tasks,
		credits:        credits,
		complianceRepo: complianceRepo,
		log:            log,
	}
}

// Trigger runs the rule chain for an event. The trigger itself is recorded
// in the ledger before any action fires. Delayed actions go to the durable
// queue and do not block the zero-delay steps after them.
func (s *AutomationServiceImpl) Trigger(ctx context.Context, trigger domain.Trigger, actx domain.ActionContext) error {
	rules := domain.RulesFor(trigger)
	if len(rules) == 0 {
		s.log.Debug().Str("trigger", string(trigger)).Msg("no automation rule for trigger")
		return nil
	}

	if _, err := s.auditSvc.Append(ctx, &domain.AuditRecord{
		ActorID:    actx.IdentityID,
		Action:     domain.AuditActionAutomationTriggered,
		TargetID:   actx.CompanyID.String(),
		TargetType: "company",
		Details:    fmt.Sprintf(`{"trigger":%q,"actions":%d}`, trigger, len(rules)),
	}); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, action := range rules {
		if action.Delay > 0 {
			scheduled := &domain.ScheduledAction{
				ID:      ids.New(),
				Trigger: trigger,
				Action:  action,
				Context: actx,
				ReadyAt: now.Add(action.Delay),
			}
			if err := s.queue.Enqueue(ctx, scheduled); err != nil {
				obs.AutomationActions.WithLabelValues(string(action.Type), "error").Inc()
				s.log.Error().Err(err).
					Str("trigger", string(trigger)).
					Str("action", string(action.Type)).
					Msg("failed to enqueue delayed action")
			}
			continue
		}

		s.execute(ctx, trigger, action, actx)
	}
	return nil
}

// execute runs one action and records its outcome. Unknown action types are
// logged and skipped, not errors.
func (s *AutomationServiceImpl) execute(ctx context.Context, trigger domain.Trigger, action domain.AutomationAction, actx domain.ActionContext) {
	var err error
	switch action.Type {
	case domain.ActionSendEmail:
		err = s.notifier.SendEmail(ctx, action.Template, actx)
	case domain.ActionSendSMS:
		err = s.notifier.SendSMS(ctx, action.Template, actx)
	case domain.ActionNotifyAdmin:
		err = s.notifier.NotifyAdmin(ctx, action.Params["priority"], actx)
	case domain.ActionCreateTask:
		dueDays, convErr := strconv.Atoi(action.Params["due_days"])
		if convErr != nil {
			dueDays = 0
		}
		err = s.tasks.Create(ctx, action.Params["title"], dueDays, actx)
	case domain.ActionIssueSwagCredit:
		amount, convErr := strconv.ParseInt(action.Params["amount"], 10, 64)
		if convErr != nil {
			err = fmt.Errorf("invalid credit amount %q: %w", action.Params["amount"], convErr)
			break
		}
		err = s.credits.IssueCredit(ctx, amount, actx)
	case domain.ActionGenerateDiscount:
		err = s.credits.GenerateDiscount(ctx, actx)
	case domain.ActionPauseProgram:
		err = s.complianceRepo.UpdateProgramStatus(ctx, actx.CompanyID, domain.ProgramStatusSuspended)
	default:
		s.log.Warn().
			Str("trigger", string(trigger)).
			Str("action", string(action.Type)).
			Msg("unknown automation action, skipping")
		obs.AutomationActions.WithLabelValues(string(action.Type), "skipped").Inc()
		return
	}

	if err != nil {
		obs.AutomationActions.WithLabelValues(string(action.Type), "error").Inc()
		s.log.Error().Err(err).
			Str("trigger", string(trigger)).
			Str("action", string(action.Type)).
			Str("company_id", actx.CompanyID.String()).
			Msg("automation action failed")
		return
	}

	obs.AutomationActions.WithLabelValues(string(action.Type), "ok").Inc()
	s.log.Info().
		Str("trigger", string(trigger)).
		Str("action", string(action.Type)).
		Str("company_id", actx.CompanyID.String()).
		Msg("automation action executed")
}

// RunScheduler polls the durable queue and executes actions whose delay has
// elapsed. Runs until the context is cancelled; meant to be started once as
// a background goroutine.
func (s *AutomationServiceImpl) RunScheduler(ctx context.Context, interval time.Duration, batchSize int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", interval).Msg("automation scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("automation scheduler stopped")
			return
		case <-ticker.C:
			s.drainDue(ctx, batchSize)
		}
	}
}

// drainDue pops and executes one batch of due actions.
func (s *AutomationServiceImpl) drainDue(ctx context.Context, batchSize int) {
	due, err := s.queue.PollDue(ctx, time.Now().UTC(), batchSize)
	if err != nil {
		s.log.Error().Err(err).Msg("polling delay queue failed")
		return
	}

	for _, scheduled := range due {
		s.execute(ctx, scheduled.Trigger, scheduled.Action, scheduled.Context)
	}
}
