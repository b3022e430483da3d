package handlers_test

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, workplaceID, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, workplaceID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, workplaceID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, workplaceID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, req, receipt, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, workplaceID, transactionID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, transactionID, req, receipt, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, workplaceID, transactionID, userID string) error {
	args := m.Called(ctx, workplaceID, transactionID, userID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecomputeClientLedger(ctx context.Context, workplaceID, clientID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RecomputeWorkplace(ctx context.Context, workplaceID, userID string) (int, error) {
	args := m.Called(ctx, workplaceID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) GetClientLedger(ctx context.Context, workplaceID, clientID, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, clientID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) GetClientBalance(ctx context.Context, workplaceID, clientID, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, workplaceID, clientID, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock BankSyncService ---
type MockBankSyncService struct {
	mock.Mock
}

func (m *MockBankSyncService) ApplyDelta(ctx context.Context, workplaceID, bankAccountID string, delta decimal.Decimal, userID string) error {
	args := m.Called(ctx, workplaceID, bankAccountID, delta, userID)
	return args.Error(0)
}

func (m *MockBankSyncService) ListBankAccounts(ctx context.Context, workplaceID, userID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankSyncService) GetBankAccount(ctx context.Context, workplaceID, bankAccountID, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID, bankAccountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

var _ portssvc.BankSyncSvc = (*MockBankSyncService)(nil)

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry domain.AuditEntry) {
	m.Called(ctx, entry)
}

func (m *MockAuditService) ListAuditEntries(ctx context.Context, workplaceID, userID string, params dto.ListAuditEntriesParams) (*dto.ListAuditEntriesResponse, error) {
	args := m.Called(ctx, workplaceID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditEntriesResponse), args.Error(1)
}

var _ portssvc.AuditSvc = (*MockAuditService)(nil)
