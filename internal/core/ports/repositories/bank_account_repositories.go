package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank account data
type BankAccountReader interface {
	// ListBankAccounts retrieves every bank account of a workplace.
	ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error)

	// FindBankAccountByID retrieves a specific bank account by its ID.
	FindBankAccountByID(ctx context.Context, workplaceID, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data
type BankAccountWriter interface {
	// UpdateBankAccountBalance stores an absolute balance for the account.
	UpdateBankAccountBalance(ctx context.Context, workplaceID, bankAccountID string, balance decimal.Decimal, userID string, updatedAt time.Time) error
}

// BankAccountRepositoryFacade combines all bank-account-related repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
