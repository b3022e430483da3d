package repositories

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// AuditRepository is the append-only store behind the audit log.
type AuditRepository interface {
	// SaveAuditEntry appends one entry.
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error

	// ListAuditEntries returns entries of a workplace, newest first. nextToken
	// is opaque and backend specific.
	ListAuditEntries(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.AuditEntry, *string, error)
}
