package services

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
)

// AuditSink records audit entries. Record never fails from the caller's
// point of view.
type AuditSink interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// AuditSvc is the audit sink plus the read side of the audit log.
type AuditSvc interface {
	AuditSink

	// ListAuditEntries returns a page of a workplace's audit log, newest first.
	ListAuditEntries(ctx context.Context, workplaceID, userID string, params dto.ListAuditEntriesParams) (*dto.ListAuditEntriesResponse, error)
}
