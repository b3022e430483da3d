package services

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankSyncSvc keeps bank account balances in step with transactions.
type BankSyncSvc interface {
	// ApplyDelta adds delta to the account balance, locally first and then in
	// the store. An account that is not tracked is ignored. On a store failure
	// the local balance is reverted and apperrors.ErrSync is returned.
	ApplyDelta(ctx context.Context, workplaceID, bankAccountID string, delta decimal.Decimal, userID string) error

	// ListBankAccounts returns every bank account of a workplace.
	ListBankAccounts(ctx context.Context, workplaceID, userID string) ([]domain.BankAccount, error)

	// GetBankAccount returns one bank account.
	GetBankAccount(ctx context.Context, workplaceID, bankAccountID, userID string) (*domain.BankAccount, error)
}
