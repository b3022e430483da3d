package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// auditService implements the AuditSvc interface
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepository
	now       func() time.Time
}

// NewAuditService creates an audit service writing to auditRepo.
func NewAuditService(auditRepo portsrepo.AuditRepository, authorizer portssvc.PermissionSvc) portssvc.AuditSvc {
	return &auditService{
		BaseService: BaseService{Authorizer: authorizer},
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// Record stores entry. A store failure is logged together with the entry and
// otherwise swallowed: auditing never aborts the operation being audited.
func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) {
	if entry.AuditID == "" {
		entry.AuditID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if entry.Level == "" {
		entry.Level = domain.AuditInfo
	}

	// The entry must be written even if the caller's request was cancelled.
	if err := s.auditRepo.SaveAuditEntry(context.WithoutCancel(ctx), entry); err != nil {
		detail := ""
		if entry.Detail != nil {
			detail = *entry.Detail
		}
		s.GetLogger(ctx).Warn("Audit sink unavailable, entry logged locally",
			slog.String("error", err.Error()),
			slog.String("audit_id", entry.AuditID),
			slog.String("workplace_id", entry.WorkplaceID),
			slog.String("actor", entry.Actor),
			slog.String("action", string(entry.Action)),
			slog.String("entity_kind", entry.EntityKind),
			slog.String("level", string(entry.Level)),
			slog.String("message", entry.Message),
			slog.String("detail", detail))
	}
}

// ListAuditEntries returns a page of the audit log.
func (s *auditService) ListAuditEntries(ctx context.Context, workplaceID, userID string, params dto.ListAuditEntriesParams) (*dto.ListAuditEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermAuditRead); err != nil {
		return nil, err
	}

	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	entries, next, err := s.auditRepo.ListAuditEntries(ctx, workplaceID, params.Limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to list audit entries", err)
	}

	resp := dto.ToListAuditEntriesResponse(entries, next)
	return &resp, nil
}
