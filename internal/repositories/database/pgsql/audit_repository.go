package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/lending_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// NewPgxAuditRepository creates an audit log stored in the audit_logs table.
func NewPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(entry)
	query := `
		INSERT INTO audit_logs (audit_id, workplace_id, actor, action, entity_kind, message, detail, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuditID,
		m.WorkplaceID,
		m.Actor,
		m.Action,
		m.EntityKind,
		m.Message,
		m.Detail,
		m.Level,
		m.Timestamp,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit entry "+m.AuditID, err)
	}
	return nil
}

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	query := `
		SELECT audit_id, workplace_id, actor, action, entity_kind, message, detail, level, created_at
		FROM audit_logs
		WHERE workplace_id = $1
	`
	args := []any{workplaceID}

	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeTimeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token: %w", apperrors.ErrValidation, err)
		}
		query += ` AND (created_at, audit_id) < ($2, $3)`
		args = append(args, ts, id)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, audit_id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query audit entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AuditEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect audit entry rows", err)
	}

	entries := mapping.ToDomainAuditEntrySlice(modelEntries)
	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	last := entries[len(entries)-1]
	token := pagination.EncodeTimeToken(last.Timestamp, last.AuditID)
	return entries, &token, nil
}
