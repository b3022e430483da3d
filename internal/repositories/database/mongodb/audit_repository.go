package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/lending_ledger_app/internal/utils/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditCollection is where audit entries are stored.
const AuditCollection = "audit_logs"

// AuditRepository stores the audit log as documents, for deployments that
// keep it outside Postgres.
type AuditRepository struct {
	provider CollectionProvider
}

// NewAuditRepository creates a mongo-backed audit repository.
func NewAuditRepository(provider CollectionProvider) *AuditRepository {
	return &AuditRepository{provider: provider}
}

var _ portsrepo.AuditRepository = (*AuditRepository)(nil)

func (r *AuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	doc := mapping.ToModelAuditEntry(entry)
	if _, err := r.provider.Collection(AuditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert audit entry %s: %w", entry.AuditID, err)
	}
	return nil
}

func (r *AuditRepository) ListAuditEntries(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	filter := bson.M{"workplace_id": workplaceID}
	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeTimeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token: %w", apperrors.ErrValidation, err)
		}
		filter["$or"] = bson.A{
			bson.M{"created_at": bson.M{"$lt": ts}},
			bson.M{"created_at": ts, "_id": bson.M{"$lt": id}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit + 1))

	cursor, err := r.provider.Collection(AuditCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.AuditEntry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, nil, fmt.Errorf("failed to decode audit entries: %w", err)
	}

	entries := mapping.ToDomainAuditEntrySlice(docs)
	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	last := entries[len(entries)-1]
	token := pagination.EncodeTimeToken(last.Timestamp, last.AuditID)
	return entries, &token, nil
}
