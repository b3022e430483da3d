package models

import "time"

// AuditEntry is a row of the audit_logs table, and also the document shape
// of the mongo audit collection.
type AuditEntry struct {
	AuditID     string    `db:"audit_id" bson:"_id"`
	WorkplaceID string    `db:"workplace_id" bson:"workplace_id"`
	Actor       string    `db:"actor" bson:"actor"`
	Action      string    `db:"action" bson:"action"`
	EntityKind  string    `db:"entity_kind" bson:"entity_kind"`
	Message     string    `db:"message" bson:"message"`
	Detail      *string   `db:"detail" bson:"detail,omitempty"`
	Level       string    `db:"level" bson:"level"`
	Timestamp   time.Time `db:"created_at" bson:"created_at"`
}
