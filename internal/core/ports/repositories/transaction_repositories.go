package repositories

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactionsByWorkplace returns every transaction of a workplace. It
	// is used to hydrate the in-memory cache.
	ListTransactionsByWorkplace(ctx context.Context, workplaceID string) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, workplaceID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves one page of transactions in ledger order.
	// It returns the transactions and a cursor for the next page, nil when
	// there are no more rows.
	ListTransactions(ctx context.Context, workplaceID string, filter TransactionFilter, limit int, after *ListCursor) ([]domain.Transaction, *ListCursor, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// UpsertTransactions inserts or fully overwrites every given transaction in
	// one batch. The workplace of an existing row is never changed.
	UpsertTransactions(ctx context.Context, transactions []domain.Transaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound if
	// nothing was deleted.
	DeleteTransaction(ctx context.Context, workplaceID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
