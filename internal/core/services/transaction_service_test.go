package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/state"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/SscSPs/lending_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo     *MockTransactionRepository
	bankRepo    *MockBankAccountRepository
	members     *MockMembershipRepository
	uploader    *MockReceiptUploader
	audit       *auditRecorder
	notifier    *notificationRecorder
	bankSync    portssvc.BankSyncSvc
	service     portssvc.TransactionSvcFacade
	workplaceID string
	userID      string
	now         time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.bankRepo = new(MockBankAccountRepository)
	suite.members = new(MockMembershipRepository)
	suite.uploader = new(MockReceiptUploader)
	suite.audit = &auditRecorder{}
	suite.notifier = &notificationRecorder{}
	suite.workplaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	suite.members.On("FindUserWorkplaceRole", mock.Anything, suite.userID, suite.workplaceID).Return(&domain.UserWorkplace{Role: domain.RoleMember}, nil)
	suite.members.On("FindUserWorkplaceRole", mock.Anything, "outsider", suite.workplaceID).Return(nil, apperrors.ErrNotFound)

	suite.service = suite.newService()
}

func (suite *TransactionServiceTestSuite) newService(opts ...services.TransactionServiceOption) portssvc.TransactionSvcFacade {
	perm := services.NewPermissionService(suite.members)
	store := services.NewWorkplaceState(state.NewCache(), suite.txnRepo, suite.bankRepo)
	suite.bankSync = services.NewBankSyncService(suite.bankRepo, store, suite.audit, perm)
	ledger := services.NewLedgerService(suite.txnRepo, store, suite.audit, perm)

	opts = append([]services.TransactionServiceOption{
		services.WithReceiptUploader(suite.uploader),
		services.WithNotifier(suite.notifier),
		services.WithClock(func() time.Time { return suite.now }),
	}, opts...)
	return services.NewTransactionService(suite.txnRepo, store, ledger, suite.bankSync, suite.audit, perm, opts...)
}

// seed sets what the store returns when the workplace is first loaded.
func (suite *TransactionServiceTestSuite) seed(txns []domain.Transaction, bankBalance int64) {
	suite.txnRepo.On("ListTransactionsByWorkplace", mock.Anything, suite.workplaceID).Return(txns, nil)
	suite.bankRepo.On("ListBankAccounts", mock.Anything, suite.workplaceID).Return([]domain.BankAccount{
		{BankAccountID: "bank-1", WorkplaceID: suite.workplaceID, Name: "Main", Balance: decimal.NewFromInt(bankBalance)},
	}, nil)
}

func (suite *TransactionServiceTestSuite) bankBalance() decimal.Decimal {
	acc, err := suite.bankSync.GetBankAccount(context.Background(), suite.workplaceID, "bank-1", suite.userID)
	suite.Require().NoError(err)
	return acc.Balance
}

func (suite *TransactionServiceTestSuite) existingDisbursement() domain.Transaction {
	return domain.Transaction{
		TransactionID:   "t1",
		WorkplaceID:     suite.workplaceID,
		ClientID:        "c1",
		TransactionDate: day(1),
		Kind:            domain.Disbursement,
		Amount:          decimal.NewFromInt(1000),
		BalanceAfter:    decimal.NewFromInt(1000),
		BankAccountID:   strPtr("bank-1"),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			CreatedBy: "creator",
		},
	}
}

func disbursementRequest(clientID string, amount int64) dto.TransactionRequest {
	return dto.TransactionRequest{
		ClientID:        clientID,
		TransactionDate: "2024-01-01",
		Kind:            "DISBURSEMENT",
		Amount:          decimal.NewFromInt(amount),
		BankAccountID:   strPtr("bank-1"),
	}
}

func (suite *TransactionServiceTestSuite) assertOneNotification(kind portssvc.NotificationKind) notification {
	sent := suite.notifier.all()
	suite.Require().Len(sent, 1, "every operation emits exactly one notification")
	suite.Equal(kind, sent[0].kind)
	return sent[0]
}

// --- Create ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil)
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(4000), suite.userID, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), nil, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.workplaceID, txn.WorkplaceID)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.Equal(suite.now, txn.CreatedAt)
	suite.Equal("1000.00", txn.BalanceAfter.StringFixed(2))
	suite.True(suite.bankBalance().Equal(decimal.NewFromInt(4000)))

	batches := suite.txnRepo.upserts()
	suite.Require().Len(batches, 2, "record write then recomputed ledger batch")
	suite.Len(batches[0], 1)
	suite.Equal("1000.00", batches[1][0].BalanceAfter.StringFixed(2))

	suite.Len(suite.audit.byAction(domain.AuditCreate), 1)
	suite.assertOneNotification(portssvc.NotifySuccess)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Forbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), nil, "outsider")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	var stageErr *services.StageError
	suite.Require().ErrorAs(err, &stageErr)
	suite.Equal(services.StagePending, stageErr.Stage)
	suite.False(stageErr.Partial())

	suite.txnRepo.AssertNotCalled(suite.T(), "UpsertTransactions", mock.Anything, mock.Anything)
	suite.Empty(suite.audit.entries)
	n := suite.assertOneNotification(portssvc.NotifyError)
	suite.Equal(apperrors.UserMessage(apperrors.ErrForbidden), n.message)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidInput() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)

	req := disbursementRequest("", 1000)
	_, err := suite.service.CreateTransaction(ctx, suite.workplaceID, req, nil, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation, "client kinds need a client")

	req = disbursementRequest("c1", 1000)
	req.TransactionDate = "01/02/2024"
	_, err = suite.service.CreateTransaction(ctx, suite.workplaceID, req, nil, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.txnRepo.AssertNotCalled(suite.T(), "UpsertTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BankOnlyKindIsInternal() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil).Once()
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(5200), suite.userID, mock.Anything).Return(nil).Once()

	req := dto.TransactionRequest{TransactionDate: "2024-01-05", Kind: "deposit", Amount: decimal.NewFromInt(200), BankAccountID: strPtr("bank-1")}
	txn, err := suite.service.CreateTransaction(ctx, suite.workplaceID, req, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.InternalMovementClientID, txn.ClientID)
	suite.Len(suite.txnRepo.upserts(), 1, "internal movements are never recomputed")
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ReceiptRejectedBeforeUpload() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)

	tests := []struct {
		name string
		file portssvc.ReceiptFile
	}{
		{"bad extension", portssvc.ReceiptFile{Filename: "receipt.exe", Size: 10, Content: strings.NewReader("x")}},
		{"too large", portssvc.ReceiptFile{Filename: "receipt.pdf", Size: services.MaxReceiptSize + 1, Content: strings.NewReader("x")}},
		{"empty", portssvc.ReceiptFile{Filename: "receipt.png", Size: 0, Content: strings.NewReader("")}},
	}
	for _, tt := range tests {
		file := tt.file
		_, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), &file, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, tt.name)
	}

	suite.uploader.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpsertTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UploadFailureAbortsBeforeWrites() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.uploader.On("Upload", ctx, suite.workplaceID, mock.Anything).Return("", errors.New("bucket unavailable")).Once()

	file := portssvc.ReceiptFile{Filename: "Receipt.JPG", Size: 1024, Content: strings.NewReader("jpeg")}
	_, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), &file, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpload)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpsertTransactions", mock.Anything, mock.Anything)
	suite.bankRepo.AssertNotCalled(suite.T(), "UpdateBankAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertOneNotification(portssvc.NotifyError)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WithReceipt() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.uploader.On("Upload", ctx, suite.workplaceID, mock.Anything).Return("https://receipts.example/r1.pdf", nil).Once()
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil)
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", mock.Anything, suite.userID, mock.Anything).Return(nil)

	file := portssvc.ReceiptFile{Filename: "r1.pdf", Size: 2048, Content: strings.NewReader("%PDF")}
	txn, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), &file, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.ReceiptURL)
	suite.Equal("https://receipts.example/r1.pdf", *txn.ReceiptURL)
	suite.Equal("https://receipts.example/r1.pdf", *suite.txnRepo.upserts()[0][0].ReceiptURL)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BankSyncFailureIsPartial() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil).Once()
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", mock.Anything, suite.userID, mock.Anything).Return(errors.New("timeout")).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), nil, suite.userID)

	suite.Require().Error(err)
	suite.NotNil(txn, "the persisted record is returned with the failure")
	suite.ErrorIs(err, apperrors.ErrSync)
	var stageErr *services.StageError
	suite.Require().ErrorAs(err, &stageErr)
	suite.Equal(services.StagePersisted, stageErr.Stage)
	suite.True(stageErr.Partial())

	suite.True(suite.bankBalance().Equal(decimal.NewFromInt(5000)), "balance compensated")
	suite.Len(suite.txnRepo.upserts(), 1, "no recompute after a failed sync")
	suite.Empty(suite.audit.byAction(domain.AuditCreate))
	suite.Len(suite.audit.byAction(domain.AuditSystem), 1)

	n := suite.assertOneNotification(portssvc.NotifyError)
	suite.Contains(n.message, "Transaction created, but a follow-up step failed.")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RecomputeFailureIsPartial() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{}, 5000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.MatchedBy(func(b []domain.Transaction) bool { return b[0].BalanceAfter.IsZero() })).Return(nil).Once()
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(assert.AnError).Once()
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(4000), suite.userID, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.workplaceID, disbursementRequest("c1", 1000), nil, suite.userID)

	suite.ErrorIs(err, apperrors.ErrRecompute)
	var stageErr *services.StageError
	suite.Require().ErrorAs(err, &stageErr)
	suite.Equal(services.StageBankSynced, stageErr.Stage)
	suite.True(suite.bankBalance().Equal(decimal.NewFromInt(4000)), "bank delta is not rolled back")
	suite.assertOneNotification(portssvc.NotifyError)
}

// --- Update ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AppliesFullNewAmount() {
	ctx := context.Background()
	existing := suite.existingDisbursement()
	suite.seed([]domain.Transaction{existing}, 4000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil)
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(2800), suite.userID, mock.Anything).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.workplaceID, "t1", disbursementRequest("c1", 1200), nil, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("t1", txn.TransactionID)
	suite.Equal(existing.CreatedAt, txn.CreatedAt)
	suite.Equal("creator", txn.CreatedBy)
	suite.Equal(suite.userID, txn.LastUpdatedBy)
	suite.Equal("1200.00", txn.BalanceAfter.StringFixed(2))
	suite.Len(suite.audit.byAction(domain.AuditUpdate), 1)
	suite.assertOneNotification(portssvc.NotifySuccess)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DiffedDelta() {
	ctx := context.Background()
	suite.service = suite.newService(services.WithBankDeltaDiffOnUpdate(true))
	suite.seed([]domain.Transaction{suite.existingDisbursement()}, 4000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil)
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(3800), suite.userID, mock.Anything).Return(nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.workplaceID, "t1", disbursementRequest("c1", 1200), nil, suite.userID)

	suite.Require().NoError(err)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MovingClientRecomputesBoth() {
	ctx := context.Background()
	other := domain.Transaction{TransactionID: "t2", WorkplaceID: suite.workplaceID, ClientID: "c1", TransactionDate: day(3), Kind: domain.Disbursement, Amount: decimal.NewFromInt(50)}
	suite.seed([]domain.Transaction{suite.existingDisbursement(), other}, 4000)
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil)
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", mock.Anything, suite.userID, mock.Anything).Return(nil)

	_, err := suite.service.UpdateTransaction(ctx, suite.workplaceID, "t1", disbursementRequest("c2", 1000), nil, suite.userID)

	suite.Require().NoError(err)
	batches := suite.txnRepo.upserts()
	suite.Require().Len(batches, 3)
	suite.Equal([]string{"t1=1000.00"}, balances(batches[1]))
	suite.Equal([]string{"t2=50.00"}, balances(batches[2]))
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.seed([]domain.Transaction{}, 4000)

	_, err := suite.service.UpdateTransaction(context.Background(), suite.workplaceID, "missing", disbursementRequest("c1", 1), nil, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertOneNotification(portssvc.NotifyError)
}

// --- Delete ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ReversesBankEffect() {
	ctx := context.Background()
	payment := domain.Transaction{TransactionID: "t2", WorkplaceID: suite.workplaceID, ClientID: "c1", TransactionDate: day(2), Kind: domain.PaymentCapital, Amount: decimal.NewFromInt(300)}
	suite.seed([]domain.Transaction{suite.existingDisbursement(), payment}, 4000)
	suite.txnRepo.On("DeleteTransaction", ctx, suite.workplaceID, "t1").Return(nil).Once()
	suite.txnRepo.On("UpsertTransactions", ctx, mock.Anything).Return(nil).Once()
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", decimalEq(5000), suite.userID, mock.Anything).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.workplaceID, "t1", suite.userID)

	suite.Require().NoError(err)
	suite.True(suite.bankBalance().Equal(decimal.NewFromInt(5000)), "+1000 reverses the original -1000")
	suite.Equal([]string{"t2=-300.00"}, balances(suite.txnRepo.upserts()[0]))
	suite.Len(suite.audit.byAction(domain.AuditDelete), 1)
	suite.assertOneNotification(portssvc.NotifySuccess)

	_, err = suite.service.GetTransactionByID(ctx, suite.workplaceID, "t1", suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_FailsFast() {
	ctx := context.Background()
	suite.seed([]domain.Transaction{suite.existingDisbursement()}, 4000)
	suite.txnRepo.On("DeleteTransaction", ctx, suite.workplaceID, "t1").Return(assert.AnError).Once()

	err := suite.service.DeleteTransaction(ctx, suite.workplaceID, "t1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	var stageErr *services.StageError
	suite.Require().ErrorAs(err, &stageErr)
	suite.Equal(services.StagePending, stageErr.Stage)

	suite.bankRepo.AssertNotCalled(suite.T(), "UpdateBankAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpsertTransactions", mock.Anything, mock.Anything)
	suite.Empty(suite.audit.entries)
	suite.True(suite.bankBalance().Equal(decimal.NewFromInt(4000)))
	suite.assertOneNotification(portssvc.NotifyError)

	_, err = suite.service.GetTransactionByID(ctx, suite.workplaceID, "t1", suite.userID)
	suite.NoError(err, "cache keeps the record the store kept")
}

// --- Reads ---

func (suite *TransactionServiceTestSuite) TestListTransactions_Pagination() {
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(day(1), createdAt, "t1")
	after := &portsrepo.ListCursor{Date: day(1), CreatedAt: createdAt, ID: "t1"}
	next := &portsrepo.ListCursor{Date: day(2), CreatedAt: createdAt, ID: "t9"}
	filter := portsrepo.TransactionFilter{ClientID: "c1"}

	suite.txnRepo.On("ListTransactions", ctx, suite.workplaceID, filter, 2, after).
		Return([]domain.Transaction{suite.existingDisbursement()}, next, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.workplaceID, suite.userID, dto.ListTransactionsParams{ClientID: "c1", Limit: 2, NextToken: token})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Equal("2024-01-01", resp.Transactions[0].TransactionDate)
	suite.Require().NotNil(resp.NextToken)
	_, _, id, err := pagination.DecodeToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.Equal("t9", id)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	_, err := suite.service.ListTransactions(context.Background(), suite.workplaceID, suite.userID, dto.ListTransactionsParams{Limit: 10, NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
