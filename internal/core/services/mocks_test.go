package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactionsByWorkplace(ctx context.Context, workplaceID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, workplaceID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workplaceID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, workplaceID string, filter portsrepo.TransactionFilter, limit int, after *portsrepo.ListCursor) ([]domain.Transaction, *portsrepo.ListCursor, error) {
	args := m.Called(ctx, workplaceID, filter, limit, after)
	var next *portsrepo.ListCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*portsrepo.ListCursor)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionRepository) UpsertTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, workplaceID, transactionID string) error {
	args := m.Called(ctx, workplaceID, transactionID)
	return args.Error(0)
}

// upserts returns the batches passed to UpsertTransactions, in call order.
func (m *MockTransactionRepository) upserts() [][]domain.Transaction {
	var batches [][]domain.Transaction
	for _, call := range m.Calls {
		if call.Method == "UpsertTransactions" {
			batches = append(batches, call.Arguments.Get(1).([]domain.Transaction))
		}
	}
	return batches
}

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

var _ portsrepo.BankAccountRepositoryFacade = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, workplaceID, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) UpdateBankAccountBalance(ctx context.Context, workplaceID, bankAccountID string, balance decimal.Decimal, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, workplaceID, bankAccountID, balance, userID, updatedAt)
	return args.Error(0)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepository = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditEntries(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.AuditEntry, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), next, args.Error(2)
}

// --- Mock WorkplaceMembershipReader ---
type MockMembershipRepository struct {
	mock.Mock
}

var _ portsrepo.WorkplaceMembershipReader = (*MockMembershipRepository)(nil)

func (m *MockMembershipRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

// --- Mock ReceiptUploader ---
type MockReceiptUploader struct {
	mock.Mock
}

var _ portssvc.ReceiptUploader = (*MockReceiptUploader)(nil)

func (m *MockReceiptUploader) Upload(ctx context.Context, workplaceID string, file portssvc.ReceiptFile) (string, error) {
	args := m.Called(ctx, workplaceID, file)
	return args.String(0), args.Error(1)
}

// auditRecorder is an in-memory AuditSink.
type auditRecorder struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *auditRecorder) Record(_ context.Context, entry domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *auditRecorder) byAction(action domain.AuditAction) []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range r.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type notification struct {
	message string
	kind    portssvc.NotificationKind
}

// notificationRecorder is an in-memory Notifier.
type notificationRecorder struct {
	mu   sync.Mutex
	sent []notification
}

func (r *notificationRecorder) Notify(_ context.Context, message string, kind portssvc.NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, notification{message: message, kind: kind})
}

func (r *notificationRecorder) all() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.sent...)
}

func decimalEq(v int64) interface{} {
	want := decimal.NewFromInt(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func strPtr(s string) *string {
	return &s
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// balances renders a batch as "id=balance" pairs.
func balances(batch []domain.Transaction) []string {
	out := make([]string, 0, len(batch))
	for _, t := range batch {
		out = append(out, t.TransactionID+"="+t.BalanceAfter.StringFixed(2))
	}
	return out
}
