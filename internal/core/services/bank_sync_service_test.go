package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/state"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BankSyncServiceTestSuite struct {
	suite.Suite
	txnRepo     *MockTransactionRepository
	bankRepo    *MockBankAccountRepository
	members     *MockMembershipRepository
	audit       *auditRecorder
	service     portssvc.BankSyncSvc
	workplaceID string
	userID      string
}

func (suite *BankSyncServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.bankRepo = new(MockBankAccountRepository)
	suite.members = new(MockMembershipRepository)
	suite.audit = &auditRecorder{}
	suite.workplaceID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.txnRepo.On("ListTransactionsByWorkplace", mock.Anything, suite.workplaceID).Return([]domain.Transaction{}, nil)
	suite.bankRepo.On("ListBankAccounts", mock.Anything, suite.workplaceID).Return([]domain.BankAccount{
		{BankAccountID: "bank-1", WorkplaceID: suite.workplaceID, Name: "Main", Balance: decimal.RequireFromString("5000.10")},
	}, nil)
	suite.members.On("FindUserWorkplaceRole", mock.Anything, suite.userID, suite.workplaceID).Return(&domain.UserWorkplace{Role: domain.RoleMember}, nil)

	store := services.NewWorkplaceState(state.NewCache(), suite.txnRepo, suite.bankRepo)
	suite.service = services.NewBankSyncService(suite.bankRepo, store, suite.audit, services.NewPermissionService(suite.members))
}

func (suite *BankSyncServiceTestSuite) balance() decimal.Decimal {
	acc, err := suite.service.GetBankAccount(context.Background(), suite.workplaceID, "bank-1", suite.userID)
	suite.Require().NoError(err)
	return acc.Balance
}

func (suite *BankSyncServiceTestSuite) TestApplyDelta_Success() {
	ctx := context.Background()
	want := decimal.RequireFromString("4000.10")
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) }), suite.userID, mock.Anything).Return(nil).Once()

	err := suite.service.ApplyDelta(ctx, suite.workplaceID, "bank-1", decimal.NewFromInt(-1000), suite.userID)

	suite.Require().NoError(err)
	suite.True(suite.balance().Equal(want))
	suite.Empty(suite.audit.entries)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *BankSyncServiceTestSuite) TestApplyDelta_BalanceVisibleBeforePersistCompletes() {
	ctx := context.Background()
	var seen decimal.Decimal
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", mock.Anything, suite.userID, mock.Anything).
		Run(func(mock.Arguments) { seen = suite.balance() }).
		Return(nil).Once()

	suite.Require().NoError(suite.service.ApplyDelta(ctx, suite.workplaceID, "bank-1", decimal.NewFromInt(100), suite.userID))
	suite.Equal("5100.10", seen.StringFixed(2))
}

func (suite *BankSyncServiceTestSuite) TestApplyDelta_PersistFailureRestoresBalance() {
	ctx := context.Background()
	before := suite.balance()
	storeErr := errors.New("connection reset")
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1", mock.Anything, suite.userID, mock.Anything).Return(storeErr).Once()

	err := suite.service.ApplyDelta(ctx, suite.workplaceID, "bank-1", decimal.NewFromInt(-1000), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSync)
	suite.ErrorIs(err, storeErr)

	after := suite.balance()
	suite.True(after.Equal(before))
	suite.Equal(before.String(), after.String())

	system := suite.audit.byAction(domain.AuditSystem)
	suite.Require().Len(system, 1)
	suite.Equal(domain.AuditError, system[0].Level)
	suite.Equal(domain.EntityBankAccount, system[0].EntityKind)
	suite.Equal(suite.userID, system[0].Actor)
}

func (suite *BankSyncServiceTestSuite) TestApplyDelta_UntrackedAccountIsNoop() {
	err := suite.service.ApplyDelta(context.Background(), suite.workplaceID, "unknown", decimal.NewFromInt(50), suite.userID)

	suite.NoError(err)
	suite.bankRepo.AssertNotCalled(suite.T(), "UpdateBankAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankSyncServiceTestSuite) TestApplyDelta_RoundsToCents() {
	ctx := context.Background()
	suite.bankRepo.On("UpdateBankAccountBalance", ctx, suite.workplaceID, "bank-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.String() == "5000.11" }), suite.userID, mock.Anything).Return(nil).Once()

	suite.NoError(suite.service.ApplyDelta(ctx, suite.workplaceID, "bank-1", decimal.RequireFromString("0.005"), suite.userID))
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *BankSyncServiceTestSuite) TestListBankAccounts_Forbidden() {
	ctx := context.Background()
	suite.members.On("FindUserWorkplaceRole", ctx, "removed", suite.workplaceID).Return(&domain.UserWorkplace{Role: domain.RoleRemoved}, nil)

	_, err := suite.service.ListBankAccounts(ctx, suite.workplaceID, "removed")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BankSyncServiceTestSuite) TestGetBankAccount_NotFound() {
	_, err := suite.service.GetBankAccount(context.Background(), suite.workplaceID, "nope", suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBankSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankSyncServiceTestSuite))
}
