package domain

import "time"

// AuditAction is the kind of change an audit entry records.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditLogin  AuditAction = "LOGIN"
	AuditSystem AuditAction = "SYSTEM"
)

// AuditLevel is the severity of an audit entry.
type AuditLevel string

const (
	AuditInfo    AuditLevel = "INFO"
	AuditWarning AuditLevel = "WARNING"
	AuditError   AuditLevel = "ERROR"
)

// Entity kinds referenced by audit entries.
const (
	EntityTransaction = "TRANSACTION"
	EntityBankAccount = "BANK_ACCOUNT"
	EntityLedger      = "LEDGER"
)

// AuditEntry is an append-only record of something that happened in a workplace.
type AuditEntry struct {
	AuditID     string      `json:"auditID"`
	WorkplaceID string      `json:"workplaceID"`
	Actor       string      `json:"actor"`
	Action      AuditAction `json:"action"`
	EntityKind  string      `json:"entityKind"`
	Message     string      `json:"message"`
	Detail      *string     `json:"detail,omitempty"`
	Level       AuditLevel  `json:"level"`
	Timestamp   time.Time   `json:"timestamp"`
}
