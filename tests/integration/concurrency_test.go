package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFrozenCandidate stores an entity whose persisted score is healthy but
// whose current signals compute well below the threshold, with an active
// banking program. The next recomputation must freeze it.
func seedFrozenCandidate(t *testing.T, app *testApp) *domain.ComplianceEntity {
	t.Helper()

	now := time.Now().UTC()
	entity := &domain.ComplianceEntity{
		ID:             uuid.New(),
		Name:           "Racey Corp",
		KYBStatus:      domain.KYBStatusApproved,
		KYBApprovedAt:  &now,
		Subscription:   true,
		Tier:           domain.TierGrowth,
		ActivatedAt:    &now,
		Chargebacks:    3,
		ChargebackRate: 0.02,
		RiskScore:      50,
		ProgramStatus:  domain.ProgramStatusActive,
		ProgramID:      "prog_race",
		CreatedAt:      now,
	}
	require.NoError(t, app.entities.Create(context.Background(), entity))
	return entity
}

// TestConcurrentRiskRecompute fires 50 concurrent recomputations at the same
// entity. The compare-and-set in the repo must let exactly one transition
// apply, so the program freezes once, the provider sees one freeze call and
// the ledger carries one freeze record.
func TestConcurrentRiskRecompute(t *testing.T) {
	app := newTestApp(t, false)
	app.seedIdentity(t, "admin@platform.test", domain.RolePlatformAdmin, nil, adminTOTPSecret)
	entity := seedFrozenCandidate(t, app)

	adminToken := app.verifiedAdminToken(t, "admin@platform.test")
	path := "/api/v1/admin/entities/" + entity.ID.String() + "/risk/recompute"

	const workers = 50

	var applied, frozen atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			status, body := app.do(t, http.MethodPost, path, adminToken, nil)
			if status != http.StatusOK {
				return
			}
			data := body["data"].(map[string]any)
			if data["applied"].(bool) {
				applied.Add(1)
			}
			if data["frozen"].(bool) {
				frozen.Add(1)
			}
		}()
	}
	wg.Wait()

	// Writers that read the pre-freeze state race on the compare-and-set
	// and exactly one of them lands the freeze. Writers that read after the
	// freeze re-apply the now-stable state as a no-op, so applied can be
	// greater than one, but the freeze itself happens once.
	assert.GreaterOrEqual(t, applied.Load(), int64(1))
	assert.Equal(t, int64(1), frozen.Load(), "exactly one recomputation should freeze")
	assert.Equal(t, int64(1), app.banking.freezeCalls.Load(), "provider should see one freeze call")
	assert.Equal(t, 1, app.ledger.countByAction(domain.AuditActionRiskFreezeTriggered))

	stored, err := app.entities.GetByID(context.Background(), entity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramStatusSuspended, stored.ProgramStatus)
	assert.Less(t, stored.RiskScore, domain.RiskThreshold)
}

// TestConcurrentRecomputeAfterFreeze verifies recomputations on an already
// frozen entity are no-ops: same score, same status, nothing re-fires.
func TestConcurrentRecomputeAfterFreeze(t *testing.T) {
	app := newTestApp(t, false)
	app.seedIdentity(t, "admin@platform.test", domain.RolePlatformAdmin, nil, adminTOTPSecret)
	entity := seedFrozenCandidate(t, app)

	adminToken := app.verifiedAdminToken(t, "admin@platform.test")
	path := "/api/v1/admin/entities/" + entity.ID.String() + "/risk/recompute"

	// Freeze once.
	status, body := app.do(t, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["data"].(map[string]any)["frozen"])

	// Replays with unchanged signals apply the identical transition but
	// never freeze or call the provider again.
	var frozen atomic.Int64
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			status, body := app.do(t, http.MethodPost, path, adminToken, nil)
			if status != http.StatusOK {
				return
			}
			if body["data"].(map[string]any)["frozen"].(bool) {
				frozen.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), frozen.Load())
	assert.Equal(t, int64(1), app.banking.freezeCalls.Load())
	assert.Equal(t, 1, app.ledger.countByAction(domain.AuditActionRiskFreezeTriggered))
}

// TestConcurrentLoginsIndependentSessions checks that step-up verification
// on one session never leaks into another session of the same identity.
func TestConcurrentLoginsIndependentSessions(t *testing.T) {
	app := newTestApp(t, false)
	app.seedIdentity(t, "admin@platform.test", domain.RolePlatformAdmin, nil, adminTOTPSecret)
	entity := app.seedEntity(t)

	verifiedToken := app.verifiedAdminToken(t, "admin@platform.test")
	unverifiedToken, _ := app.login(t, "admin@platform.test")

	// The unverified session stays gated.
	status, body := app.do(t, http.MethodPost, "/api/v1/admin/entities/"+entity.ID.String()+"/kyb/approve", unverifiedToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_005", body["error_code"])

	// The verified one is unaffected by the sibling login. The approval
	// still fails validation because nothing was submitted, which proves
	// it passed the authorization gates.
	status, body = app.do(t, http.MethodPost, "/api/v1/admin/entities/"+entity.ID.String()+"/kyb/approve", verifiedToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CMP_001", body["error_code"])
}
