package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/utils/money"
	"github.com/SscSPs/lending_ledger_app/internal/utils/optimistic"
	"github.com/shopspring/decimal"
)

// bankSyncService implements the BankSyncSvc interface
type bankSyncService struct {
	BaseService
	bankRepo portsrepo.BankAccountWriter
	store    *WorkplaceState
	audit    portssvc.AuditSink
	now      func() time.Time
}

// NewBankSyncService creates a new bank balance synchronizer.
func NewBankSyncService(
	bankRepo portsrepo.BankAccountWriter,
	store *WorkplaceState,
	audit portssvc.AuditSink,
	authorizer portssvc.PermissionSvc,
) portssvc.BankSyncSvc {
	return &bankSyncService{
		BaseService: BaseService{Authorizer: authorizer},
		bankRepo:    bankRepo,
		store:       store,
		audit:       audit,
		now:         time.Now,
	}
}

var _ portssvc.BankSyncSvc = (*bankSyncService)(nil)

// ApplyDelta shows the new balance to readers immediately and then stores
// it. If the store rejects it the previous balance is put back, the failure
// is audited and apperrors.ErrSync is returned.
func (s *bankSyncService) ApplyDelta(ctx context.Context, workplaceID, bankAccountID string, delta decimal.Decimal, userID string) error {
	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace for bank sync", slog.String("workplace_id", workplaceID))
		return fmt.Errorf("%w: %w", apperrors.ErrSync, err)
	}

	account, ok := w.FindBankAccount(bankAccountID)
	if !ok {
		s.LogDebug(ctx, "Bank account not tracked, skipping sync",
			slog.String("workplace_id", workplaceID),
			slog.String("bank_account_id", bankAccountID))
		return nil
	}

	previous := account.Balance
	next := money.Add(previous, delta)

	err = optimistic.Apply(ctx, optimistic.Step{
		Apply: func() { w.SetBankBalance(bankAccountID, next) },
		Persist: func(ctx context.Context) error {
			return s.bankRepo.UpdateBankAccountBalance(ctx, workplaceID, bankAccountID, next, userID, s.now().UTC())
		},
		Revert: func() { w.SetBankBalance(bankAccountID, previous) },
	})
	if err != nil {
		s.LogError(ctx, err, "Bank balance sync failed, balance reverted",
			slog.String("workplace_id", workplaceID),
			slog.String("bank_account_id", bankAccountID),
			slog.String("delta", delta.StringFixed(2)))
		s.audit.Record(ctx, domain.AuditEntry{
			WorkplaceID: workplaceID,
			Actor:       userID,
			Action:      domain.AuditSystem,
			EntityKind:  domain.EntityBankAccount,
			Message:     fmt.Sprintf("Failed to update balance of bank account %s", account.Name),
			Detail:      ptr(fmt.Sprintf("account=%s delta=%s kept=%s: %v", bankAccountID, delta.StringFixed(2), previous.StringFixed(2), err)),
			Level:       domain.AuditError,
		})
		return fmt.Errorf("%w: account %s: %w", apperrors.ErrSync, bankAccountID, err)
	}

	s.LogDebug(ctx, "Bank balance synced",
		slog.String("workplace_id", workplaceID),
		slog.String("bank_account_id", bankAccountID),
		slog.String("delta", delta.StringFixed(2)),
		slog.String("balance", next.StringFixed(2)))
	return nil
}

// ListBankAccounts returns the cached bank accounts of a workplace.
func (s *bankSyncService) ListBankAccounts(ctx context.Context, workplaceID, userID string) ([]domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermBankAccountsRead); err != nil {
		return nil, err
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to list bank accounts", err)
	}
	return w.BankAccounts(), nil
}

// GetBankAccount returns one cached bank account.
func (s *bankSyncService) GetBankAccount(ctx context.Context, workplaceID, bankAccountID, userID string) (*domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermBankAccountsRead); err != nil {
		return nil, err
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to get bank account", err)
	}

	account, ok := w.FindBankAccount(bankAccountID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}
