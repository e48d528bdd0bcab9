package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Audit Ledger ---

type inMemoryAuditLedger struct {
	mu      sync.RWMutex
	records []domain.AuditRecord
}

func newInMemoryAuditLedger() *inMemoryAuditLedger {
	return &inMemoryAuditLedger{}
}

func (l *inMemoryAuditLedger) Append(ctx context.Context, rec *domain.AuditRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *rec
	cp.ReadOnly = true
	l.records = append(l.records, cp)
	return nil
}

func (l *inMemoryAuditLedger) Query(ctx context.Context, q ports.AuditQuery) ([]domain.AuditRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.AuditRecord
	// Append order matches ID order, so walking backwards yields
	// most-recent-first.
	for i := len(l.records) - 1; i >= 0; i-- {
		rec := l.records[i]
		if q.ActorID != nil && (rec.ActorID == nil || *rec.ActorID != *q.ActorID) {
			continue
		}
		if q.Action != nil && rec.Action != *q.Action {
			continue
		}
		if q.TargetID != nil && rec.TargetID != *q.TargetID {
			continue
		}
		if q.From != nil && rec.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && rec.CreatedAt.After(*q.To) {
			continue
		}
		out = append(out, rec)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

// countByAction is a test helper, not part of the port.
func (l *inMemoryAuditLedger) countByAction(action domain.AuditAction) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, rec := range l.records {
		if rec.Action == action {
			n++
		}
	}
	return n
}

// --- In-Memory Identity Repo ---

type inMemoryIdentityRepo struct {
	mu         sync.RWMutex
	identities map[uuid.UUID]*domain.UserIdentity
}

func newInMemoryIdentityRepo() *inMemoryIdentityRepo {
	return &inMemoryIdentityRepo{identities: make(map[uuid.UUID]*domain.UserIdentity)}
}

func (r *inMemoryIdentityRepo) Create(ctx context.Context, identity *domain.UserIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.identities {
		if existing.Email == identity.Email {
			return fmt.Errorf("email already exists")
		}
	}
	cp := *identity
	r.identities[identity.ID] = &cp
	return nil
}

func (r *inMemoryIdentityRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserIdentity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.identities[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryIdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.UserIdentity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.identities {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryIdentityRepo) UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.identities[id]
	if !ok {
		return fmt.Errorf("identity not found")
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryIdentityRepo) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.identities[id]
	if !ok {
		return fmt.Errorf("identity not found")
	}
	u.ResetTokenHash = &tokenHash
	u.ResetTokenExpiry = &expiry
	return nil
}

func (r *inMemoryIdentityRepo) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.identities[id]
	if !ok {
		return fmt.Errorf("identity not found")
	}
	u.ResetTokenHash = nil
	u.ResetTokenExpiry = nil
	return nil
}

func (r *inMemoryIdentityRepo) SetStepUp(ctx context.Context, id uuid.UUID, enabled bool, secretEnc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.identities[id]
	if !ok {
		return fmt.Errorf("identity not found")
	}
	u.StepUpEnabled = enabled
	u.StepUpSecretEnc = secretEnc
	return nil
}

func (r *inMemoryIdentityRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdentityStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.identities[id]
	if !ok {
		return fmt.Errorf("identity not found")
	}
	u.Status = status
	return nil
}

// --- In-Memory Compliance Repo ---

type inMemoryComplianceRepo struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]*domain.ComplianceEntity
}

func newInMemoryComplianceRepo() *inMemoryComplianceRepo {
	return &inMemoryComplianceRepo{entities: make(map[uuid.UUID]*domain.ComplianceEntity)}
}

func (r *inMemoryComplianceRepo) Create(ctx context.Context, entity *domain.ComplianceEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entity
	r.entities[entity.ID] = &cp
	return nil
}

func (r *inMemoryComplianceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

// ApplyRiskTransition mirrors the compare-and-set the SQL adapter does with
// a pinned WHERE clause: the update lands only if score and status still
// match what the caller read.
func (r *inMemoryComplianceRepo) ApplyRiskTransition(ctx context.Context, id uuid.UUID, prevScore int, prevStatus domain.ProgramStatus, newScore int, newStatus domain.ProgramStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return false, nil
	}
	if e.RiskScore != prevScore || e.ProgramStatus != prevStatus {
		return false, nil
	}
	now := time.Now().UTC()
	e.RiskScore = newScore
	e.ProgramStatus = newStatus
	e.LastRiskCheck = &now
	e.UpdatedAt = now
	return true, nil
}

// mutate is a test hook to move an entity's risk inputs between
// recomputations, the way chargeback or billing sync jobs would.
func (r *inMemoryComplianceRepo) mutate(id uuid.UUID, fn func(*domain.ComplianceEntity)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entities[id]; ok {
		fn(e)
	}
}

func (r *inMemoryComplianceRepo) UpdateKYB(ctx context.Context, entity *domain.ComplianceEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[entity.ID]
	if !ok {
		return fmt.Errorf("entity not found")
	}
	e.Name = entity.Name
	e.KYBStatus = entity.KYBStatus
	e.KYBSubmittedAt = entity.KYBSubmittedAt
	e.KYBApprovedAt = entity.KYBApprovedAt
	e.KYBRejectReason = entity.KYBRejectReason
	e.TaxID = entity.TaxID
	e.BusinessAddress = entity.BusinessAddress
	e.AdminApproved = entity.AdminApproved
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryComplianceRepo) SetSubscription(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("entity not found")
	}
	e.Subscription = active
	if active && e.ActivatedAt == nil {
		now := time.Now().UTC()
		e.ActivatedAt = &now
	}
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryComplianceRepo) IncrementPaymentFailures(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("entity not found")
	}
	e.PaymentFailures++
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryComplianceRepo) SetProgram(ctx context.Context, id uuid.UUID, programID string, status domain.ProgramStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("entity not found")
	}
	e.ProgramID = programID
	e.ProgramStatus = status
	if e.ActivatedAt == nil {
		now := time.Now().UTC()
		e.ActivatedAt = &now
	}
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryComplianceRepo) UpdateProgramStatus(ctx context.Context, id uuid.UUID, status domain.ProgramStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("entity not found")
	}
	e.ProgramStatus = status
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// --- Stub Banking Gateway ---

// stubBankingGateway counts calls so tests can assert exactly-once provider
// side effects under concurrency.
type stubBankingGateway struct {
	programSeq    atomic.Int64
	cardSeq       atomic.Int64
	freezeCalls   atomic.Int64
	unfreezeCalls atomic.Int64
}

func newStubBankingGateway() *stubBankingGateway {
	return &stubBankingGateway{}
}

func (g *stubBankingGateway) CreateProgram(ctx context.Context, entity *domain.ComplianceEntity) (string, error) {
	return fmt.Sprintf("prog_%d", g.programSeq.Add(1)), nil
}

func (g *stubBankingGateway) IssueCard(ctx context.Context, programID string, req ports.CardRequest) (string, error) {
	return fmt.Sprintf("card_%d", g.cardSeq.Add(1)), nil
}

func (g *stubBankingGateway) FreezeProgram(ctx context.Context, programID string, reason string) error {
	g.freezeCalls.Add(1)
	return nil
}

func (g *stubBankingGateway) UnfreezeProgram(ctx context.Context, programID string) error {
	g.unfreezeCalls.Add(1)
	return nil
}
