package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/lending_ledger_app/internal/core/state"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
)

// WorkplaceState hands out cached workplace state, hydrating it from the
// store on first use.
type WorkplaceState struct {
	cache    *state.Cache
	txnRepo  portsrepo.TransactionReader
	bankRepo portsrepo.BankAccountReader
}

// NewWorkplaceState creates a loader over cache.
func NewWorkplaceState(cache *state.Cache, txnRepo portsrepo.TransactionReader, bankRepo portsrepo.BankAccountReader) *WorkplaceState {
	return &WorkplaceState{cache: cache, txnRepo: txnRepo, bankRepo: bankRepo}
}

// Workplace returns the cached state of workplaceID, loading it if needed.
func (s *WorkplaceState) Workplace(ctx context.Context, workplaceID string) (*state.Workplace, error) {
	w := s.cache.Workplace(workplaceID)
	if w.IsLoaded() {
		return w, nil
	}
	if err := s.hydrate(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Refresh reloads workplaceID from the store, discarding cached state.
func (s *WorkplaceState) Refresh(ctx context.Context, workplaceID string) (*state.Workplace, error) {
	w := s.cache.Workplace(workplaceID)
	if err := s.hydrate(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkplaceState) hydrate(ctx context.Context, w *state.Workplace) error {
	txns, err := s.txnRepo.ListTransactionsByWorkplace(ctx, w.ID())
	if err != nil {
		return fmt.Errorf("failed to load transactions for workplace %s: %w", w.ID(), err)
	}
	accounts, err := s.bankRepo.ListBankAccounts(ctx, w.ID())
	if err != nil {
		return fmt.Errorf("failed to load bank accounts for workplace %s: %w", w.ID(), err)
	}
	w.Load(txns, accounts)

	middleware.GetLoggerFromCtx(ctx).Debug("Workplace state loaded",
		slog.String("workplace_id", w.ID()),
		slog.Int("transactions", len(txns)),
		slog.Int("bank_accounts", len(accounts)))
	return nil
}
