package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService derives client ledgers from the cached transaction set and
// stores the derived balances.
type ledgerService struct {
	BaseService
	txnRepo portsrepo.TransactionWriter
	store   *WorkplaceState
	audit   portssvc.AuditSink
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	txnRepo portsrepo.TransactionWriter,
	store *WorkplaceState,
	audit portssvc.AuditSink,
	authorizer portssvc.PermissionSvc,
) portssvc.LedgerSvc {
	return &ledgerService{
		BaseService: BaseService{Authorizer: authorizer},
		txnRepo:     txnRepo,
		store:       store,
		audit:       audit,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// RecomputeClientLedger replays clientID's history and upserts the whole
// resulting batch. The cache is updated only after the write succeeds.
func (s *ledgerService) RecomputeClientLedger(ctx context.Context, workplaceID, clientID string) ([]domain.Transaction, error) {
	if clientID == "" || clientID == domain.InternalMovementClientID {
		return nil, nil
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace for recompute", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRecompute, err)
	}

	ledger := accounting.RecomputeLedger(clientID, w.Transactions())
	if len(ledger) == 0 {
		s.LogDebug(ctx, "Empty client history, nothing to recompute",
			slog.String("workplace_id", workplaceID),
			slog.String("client_id", clientID))
		return nil, nil
	}

	if err := s.txnRepo.UpsertTransactions(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to persist recomputed ledger",
			slog.String("workplace_id", workplaceID),
			slog.String("client_id", clientID),
			slog.Int("transactions", len(ledger)))
		return nil, fmt.Errorf("%w: client %s: %w", apperrors.ErrRecompute, clientID, err)
	}
	w.MergeTransactions(ledger)

	s.LogDebug(ctx, "Client ledger recomputed",
		slog.String("workplace_id", workplaceID),
		slog.String("client_id", clientID),
		slog.Int("transactions", len(ledger)),
		slog.String("balance", accounting.ClientBalance(ledger).StringFixed(2)))
	return ledger, nil
}

// RecomputeWorkplace reloads the workplace from the store and recomputes
// every client. It stops at the first failing client; rerunning it is safe.
func (s *ledgerService) RecomputeWorkplace(ctx context.Context, workplaceID, userID string) (int, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermLedgerRecompute); err != nil {
		return 0, err
	}

	w, err := s.store.Refresh(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload workplace for recompute", slog.String("workplace_id", workplaceID))
		return 0, fmt.Errorf("%w: %w", apperrors.ErrRecompute, err)
	}

	clientIDs := accounting.ClientIDs(w.Transactions())
	for i, clientID := range clientIDs {
		if _, err := s.RecomputeClientLedger(ctx, workplaceID, clientID); err != nil {
			s.audit.Record(ctx, domain.AuditEntry{
				WorkplaceID: workplaceID,
				Actor:       userID,
				Action:      domain.AuditSystem,
				EntityKind:  domain.EntityLedger,
				Message:     fmt.Sprintf("Ledger recompute stopped at client %s after %d of %d clients", clientID, i, len(clientIDs)),
				Detail:      ptr(err.Error()),
				Level:       domain.AuditError,
			})
			return i, err
		}
	}

	s.audit.Record(ctx, domain.AuditEntry{
		WorkplaceID: workplaceID,
		Actor:       userID,
		Action:      domain.AuditSystem,
		EntityKind:  domain.EntityLedger,
		Message:     fmt.Sprintf("Recomputed ledgers of %d clients", len(clientIDs)),
		Level:       domain.AuditInfo,
	})
	s.LogInfo(ctx, "Workplace ledgers recomputed",
		slog.String("workplace_id", workplaceID),
		slog.Int("clients", len(clientIDs)))
	return len(clientIDs), nil
}

// GetClientLedger derives the ledger from the cached transactions without writing.
func (s *ledgerService) GetClientLedger(ctx context.Context, workplaceID, clientID, userID string) ([]domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsRead); err != nil {
		return nil, err
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to load client ledger", err)
	}

	ledger := accounting.RecomputeLedger(clientID, w.Transactions())
	if ledger == nil {
		return []domain.Transaction{}, nil
	}
	return ledger, nil
}

// GetClientBalance is the BalanceAfter of the last ledger entry, 0 when empty.
func (s *ledgerService) GetClientBalance(ctx context.Context, workplaceID, clientID, userID string) (decimal.Decimal, error) {
	ledger, err := s.GetClientLedger(ctx, workplaceID, clientID, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.ClientBalance(ledger), nil
}

func ptr[T any](v T) *T {
	return &v
}
