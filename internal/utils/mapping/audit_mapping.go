package mapping

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		AuditID:     d.AuditID,
		WorkplaceID: d.WorkplaceID,
		Actor:       d.Actor,
		Action:      string(d.Action),
		EntityKind:  d.EntityKind,
		Message:     d.Message,
		Detail:      d.Detail,
		Level:       string(d.Level),
		Timestamp:   d.Timestamp,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditID:     m.AuditID,
		WorkplaceID: m.WorkplaceID,
		Actor:       m.Actor,
		Action:      domain.AuditAction(m.Action),
		EntityKind:  m.EntityKind,
		Message:     m.Message,
		Detail:      m.Detail,
		Level:       domain.AuditLevel(m.Level),
		Timestamp:   m.Timestamp.UTC(),
	}
}

// ToDomainAuditEntrySlice converts a slice of model AuditEntries to a slice of domain AuditEntries
func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
