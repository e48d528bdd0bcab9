package postgres

import (
	"context"
	"fmt"
	"strings"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/internal/core/ports"
)

// AuditLedgerRepo implements ports.AuditLedger. The backing table has no
// UPDATE or DELETE path; revocation of table privileges is enforced in the
// migration, not here.
type AuditLedgerRepo struct {
	pool Pool
}

// NewAuditLedgerRepo creates a new AuditLedgerRepo.
func NewAuditLedgerRepo(pool Pool) *AuditLedgerRepo {
	return &AuditLedgerRepo{pool: pool}
}

// Append inserts a ledger record. There is no corresponding update or delete.
func (r *AuditLedgerRepo) Append(ctx context.Context, rec *domain.AuditRecord) error {
	query := `INSERT INTO audit_ledger (id, actor_id, actor_role, action, target_id, target_type, details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.ActorID, rec.ActorRole, string(rec.Action),
		rec.TargetID, rec.TargetType, rec.Details,
		rec.IPAddress, rec.UserAgent, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}

// Query reads ledger records matching the filter, most recent first. ULIDs
// sort lexicographically by creation time, so ordering by id is ordering by
// time with a total order within the same millisecond.
func (r *AuditLedgerRepo) Query(ctx context.Context, q ports.AuditQuery) ([]domain.AuditRecord, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.ActorID != nil {
		conds = append(conds, "actor_id = "+arg(*q.ActorID))
	}
	if q.Action != nil {
		conds = append(conds, "action = "+arg(string(*q.Action)))
	}
	if q.TargetID != nil {
		conds = append(conds, "target_id = "+arg(*q.TargetID))
	}
	if q.From != nil {
		conds = append(conds, "created_at >= "+arg(*q.From))
	}
	if q.To != nil {
		conds = append(conds, "created_at <= "+arg(*q.To))
	}

	query := `SELECT id, actor_id, actor_role, action, target_id, target_type, details, ip_address, user_agent, created_at
		FROM audit_ledger`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC"
	if q.Limit > 0 {
		query += " LIMIT " + arg(q.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit ledger: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		err := rows.Scan(
			&rec.ID, &rec.ActorID, &rec.ActorRole, &rec.Action,
			&rec.TargetID, &rec.TargetType, &rec.Details,
			&rec.IPAddress, &rec.UserAgent, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		rec.ReadOnly = true
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit records: %w", err)
	}
	return records, nil
}
