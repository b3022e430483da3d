package services

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, workplaceID, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions in ledger order.
	ListTransactions(ctx context.Context, workplaceID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc runs the transaction lifecycle: receipt upload,
// persistence, bank sync, ledger recompute and audit.
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction. receipt may be nil.
	CreateTransaction(ctx context.Context, workplaceID string, req dto.TransactionRequest, receipt *ReceiptFile, userID string) (*domain.Transaction, error)

	// UpdateTransaction replaces an existing transaction, keeping its creation audit fields.
	UpdateTransaction(ctx context.Context, workplaceID, transactionID string, req dto.TransactionRequest, receipt *ReceiptFile, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its bank effect.
	DeleteTransaction(ctx context.Context, workplaceID, transactionID, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
