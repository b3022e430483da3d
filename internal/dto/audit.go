package dto

import (
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// ListAuditEntriesParams defines query parameters for listing audit entries.
type ListAuditEntriesParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// AuditEntryResponse defines the data returned for an audit entry.
type AuditEntryResponse struct {
	AuditID    string    `json:"auditID"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityKind string    `json:"entityKind"`
	Message    string    `json:"message"`
	Detail     *string   `json:"detail,omitempty"`
	Level      string    `json:"level"`
	Timestamp  time.Time `json:"timestamp"`
}

// ListAuditEntriesResponse is one page of the audit log.
type ListAuditEntriesResponse struct {
	Entries   []AuditEntryResponse `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToAuditEntryResponse converts domain.AuditEntry to DTO.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		AuditID:    e.AuditID,
		Actor:      e.Actor,
		Action:     string(e.Action),
		EntityKind: e.EntityKind,
		Message:    e.Message,
		Detail:     e.Detail,
		Level:      string(e.Level),
		Timestamp:  e.Timestamp,
	}
}

// ToListAuditEntriesResponse builds the list DTO.
func ToListAuditEntriesResponse(entries []domain.AuditEntry, nextToken *string) ListAuditEntriesResponse {
	list := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		list[i] = ToAuditEntryResponse(&entries[i])
	}
	return ListAuditEntriesResponse{Entries: list, NextToken: nextToken}
}
