package notify

import (
	"bytes"
	"context"
	"testing"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_SendEmail(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.NewWithWriter("info", &buf))

	err := n.SendEmail(context.Background(), "welcome", domain.ActionContext{CompanyID: uuid.New()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"template":"welcome"`)
	assert.Contains(t, buf.String(), "Email dispatched")
}

func TestLogNotifier_NotifyAdmin_UrgentIsWarn(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.NewWithWriter("info", &buf))

	err := n.NotifyAdmin(context.Background(), "urgent", domain.ActionContext{CompanyID: uuid.New()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"priority":"urgent"`)
}

func TestLogTaskService_Create(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogTaskService(logger.NewWithWriter("info", &buf))

	err := s.Create(context.Background(), "Onboarding Call", 2, domain.ActionContext{CompanyID: uuid.New()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"title":"Onboarding Call"`)
	assert.Contains(t, buf.String(), `"due_days":2`)
}

func TestLogCreditIssuer_IssueCredit(t *testing.T) {
	var buf bytes.Buffer
	c := NewLogCreditIssuer(logger.NewWithWriter("info", &buf))

	err := c.IssueCredit(context.Background(), 150, domain.ActionContext{CompanyID: uuid.New()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"amount":150`)
}
