package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/SscSPs/lending_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/lending_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// transactionService runs create, update and delete as one awaited sequence:
// receipt upload, persist, bank sync, ledger recompute, audit. Failures after
// the record is persisted are reported but not rolled back.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	store        *WorkplaceState
	ledger       portssvc.LedgerRecomputer
	bankSync     portssvc.BankSyncSvc
	audit        portssvc.AuditSink
	uploader     portssvc.ReceiptUploader
	notifier     portssvc.Notifier
	diffOnUpdate bool
	now          func() time.Time
}

// TransactionServiceOption is a function that configures a transactionService
type TransactionServiceOption func(*transactionService)

// WithReceiptUploader sets where receipts are stored. Without one, requests
// carrying a receipt fail with apperrors.ErrUpload.
func WithReceiptUploader(uploader portssvc.ReceiptUploader) TransactionServiceOption {
	return func(s *transactionService) {
		s.uploader = uploader
	}
}

// WithNotifier sets the sink for user-facing outcome notifications.
func WithNotifier(notifier portssvc.Notifier) TransactionServiceOption {
	return func(s *transactionService) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithBankDeltaDiffOnUpdate makes updates apply only the difference between
// the old and new bank effect instead of the full new amount.
func WithBankDeltaDiffOnUpdate(enabled bool) TransactionServiceOption {
	return func(s *transactionService) {
		s.diffOnUpdate = enabled
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates the transaction lifecycle service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	store *WorkplaceState,
	ledger portssvc.LedgerRecomputer,
	bankSync portssvc.BankSyncSvc,
	audit portssvc.AuditSink,
	authorizer portssvc.PermissionSvc,
	opts ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	s := &transactionService{
		BaseService: BaseService{Authorizer: authorizer},
		txnRepo:     txnRepo,
		store:       store,
		ledger:      ledger,
		bankSync:    bankSync,
		audit:       audit,
		notifier:    nopNotifier{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, portssvc.NotificationKind) {}

// --- Writes ---

// CreateTransaction records a new transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, workplaceID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	txn, err := s.create(ctx, workplaceID, req, receipt, userID)
	s.report(ctx, "created", err)
	return txn, err
}

func (s *transactionService) create(ctx context.Context, workplaceID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	lc := newLifecycle("create")

	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsCreate); err != nil {
		return nil, lc.fail(err)
	}

	now := s.now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		WorkplaceID:   workplaceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := applyRequest(&txn, req); err != nil {
		return nil, lc.fail(err)
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}

	if receipt != nil {
		url, err := s.uploadReceipt(ctx, workplaceID, *receipt)
		if err != nil {
			return nil, lc.fail(err)
		}
		txn.ReceiptURL = &url
		lc.advance(StageReceiptUploaded)
	}

	if err := s.txnRepo.UpsertTransactions(ctx, []domain.Transaction{txn}); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("workplace_id", workplaceID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}
	w.PutTransaction(txn)
	lc.advance(StagePersisted)

	if txn.HasBankAccount() {
		if err := s.bankSync.ApplyDelta(ctx, workplaceID, *txn.BankAccountID, accounting.BankDelta(txn), userID); err != nil {
			return &txn, lc.fail(err)
		}
	}
	lc.advance(StageBankSynced)

	if err := s.recompute(ctx, workplaceID, &txn); err != nil {
		return &txn, lc.fail(err)
	}
	lc.advance(StageLedgerRecomputed)

	s.audit.Record(ctx, domain.AuditEntry{
		WorkplaceID: workplaceID,
		Actor:       userID,
		Action:      domain.AuditCreate,
		EntityKind:  domain.EntityTransaction,
		Message:     describe(txn),
		Detail:      ptr(txn.TransactionID),
		Level:       domain.AuditInfo,
	})
	lc.advance(StageAudited)

	s.LogInfo(ctx, "Transaction created",
		slog.String("workplace_id", workplaceID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)))
	lc.advance(StageDone)
	return &txn, nil
}

// UpdateTransaction replaces a transaction while keeping who created it and when.
func (s *transactionService) UpdateTransaction(ctx context.Context, workplaceID, transactionID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	txn, err := s.update(ctx, workplaceID, transactionID, req, receipt, userID)
	s.report(ctx, "updated", err)
	return txn, err
}

func (s *transactionService) update(ctx context.Context, workplaceID, transactionID string, req dto.TransactionRequest, receipt *portssvc.ReceiptFile, userID string) (*domain.Transaction, error) {
	lc := newLifecycle("update")

	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsUpdate); err != nil {
		return nil, lc.fail(err)
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}

	prev, ok := w.FindTransaction(transactionID)
	if !ok {
		return nil, lc.fail(apperrors.ErrNotFound)
	}

	next := prev
	next.LastUpdatedAt = s.now().UTC()
	next.LastUpdatedBy = userID
	if err := applyRequest(&next, req); err != nil {
		return nil, lc.fail(err)
	}

	if receipt != nil {
		url, err := s.uploadReceipt(ctx, workplaceID, *receipt)
		if err != nil {
			return nil, lc.fail(err)
		}
		next.ReceiptURL = &url
		lc.advance(StageReceiptUploaded)
	}

	if err := s.txnRepo.UpsertTransactions(ctx, []domain.Transaction{next}); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("workplace_id", workplaceID),
			slog.String("transaction_id", transactionID))
		return nil, lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}
	w.PutTransaction(next)
	lc.advance(StagePersisted)

	if err := s.syncUpdate(ctx, workplaceID, prev, next, userID); err != nil {
		return &next, lc.fail(err)
	}
	lc.advance(StageBankSynced)

	if err := s.recompute(ctx, workplaceID, &next); err != nil {
		return &next, lc.fail(err)
	}
	if prev.ClientID != next.ClientID && !prev.IsInternalMovement() {
		if _, err := s.ledger.RecomputeClientLedger(ctx, workplaceID, prev.ClientID); err != nil {
			return &next, lc.fail(err)
		}
	}
	lc.advance(StageLedgerRecomputed)

	s.audit.Record(ctx, domain.AuditEntry{
		WorkplaceID: workplaceID,
		Actor:       userID,
		Action:      domain.AuditUpdate,
		EntityKind:  domain.EntityTransaction,
		Message:     describe(next),
		Detail:      ptr(fmt.Sprintf("%s: was %s", next.TransactionID, describe(prev))),
		Level:       domain.AuditInfo,
	})
	lc.advance(StageAudited)

	s.LogInfo(ctx, "Transaction updated",
		slog.String("workplace_id", workplaceID),
		slog.String("transaction_id", transactionID))
	lc.advance(StageDone)
	return &next, nil
}

// syncUpdate applies the bank effect of an edit. By default the full new
// amount is applied again; with diffOnUpdate only the change is applied,
// moving it between accounts if the linked account changed.
func (s *transactionService) syncUpdate(ctx context.Context, workplaceID string, prev, next domain.Transaction, userID string) error {
	if s.diffOnUpdate && prev.HasBankAccount() && (!next.HasBankAccount() || *prev.BankAccountID != *next.BankAccountID) {
		if err := s.bankSync.ApplyDelta(ctx, workplaceID, *prev.BankAccountID, accounting.ReversalDelta(prev), userID); err != nil {
			return err
		}
		if !next.HasBankAccount() {
			return nil
		}
		return s.bankSync.ApplyDelta(ctx, workplaceID, *next.BankAccountID, accounting.BankDelta(next), userID)
	}
	if !next.HasBankAccount() {
		return nil
	}
	// A previously unlinked transaction never touched the account, so there is nothing to diff against.
	delta := accounting.UpdateDelta(prev, next, s.diffOnUpdate && prev.HasBankAccount())
	return s.bankSync.ApplyDelta(ctx, workplaceID, *next.BankAccountID, delta, userID)
}

// DeleteTransaction removes a transaction. If the delete itself fails nothing
// else is touched.
func (s *transactionService) DeleteTransaction(ctx context.Context, workplaceID, transactionID, userID string) error {
	err := s.delete(ctx, workplaceID, transactionID, userID)
	s.report(ctx, "deleted", err)
	return err
}

func (s *transactionService) delete(ctx context.Context, workplaceID, transactionID, userID string) error {
	lc := newLifecycle("delete")

	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsDelete); err != nil {
		return lc.fail(err)
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}

	prev, ok := w.FindTransaction(transactionID)
	if !ok {
		return lc.fail(apperrors.ErrNotFound)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, workplaceID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("workplace_id", workplaceID),
			slog.String("transaction_id", transactionID))
		return lc.fail(fmt.Errorf("%w: %w", apperrors.ErrPersistence, err))
	}
	w.RemoveTransaction(transactionID)
	lc.advance(StagePersisted)

	if prev.HasBankAccount() {
		if err := s.bankSync.ApplyDelta(ctx, workplaceID, *prev.BankAccountID, accounting.ReversalDelta(prev), userID); err != nil {
			return lc.fail(err)
		}
	}
	lc.advance(StageBankSynced)

	if !prev.IsInternalMovement() {
		if _, err := s.ledger.RecomputeClientLedger(ctx, workplaceID, prev.ClientID); err != nil {
			return lc.fail(err)
		}
	}
	lc.advance(StageLedgerRecomputed)

	s.audit.Record(ctx, domain.AuditEntry{
		WorkplaceID: workplaceID,
		Actor:       userID,
		Action:      domain.AuditDelete,
		EntityKind:  domain.EntityTransaction,
		Message:     describe(prev),
		Detail:      ptr(prev.TransactionID),
		Level:       domain.AuditInfo,
	})
	lc.advance(StageAudited)

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("workplace_id", workplaceID),
		slog.String("transaction_id", transactionID))
	lc.advance(StageDone)
	return nil
}

// --- Reads ---

// GetTransactionByID returns a cached transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, workplaceID, transactionID, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsRead); err != nil {
		return nil, err
	}

	w, err := s.store.Workplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to get transaction", err)
	}

	txn, ok := w.FindTransaction(transactionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

// ListTransactions pages through stored transactions in ledger order.
func (s *transactionService) ListTransactions(ctx context.Context, workplaceID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.PermTransactionsRead); err != nil {
		return nil, err
	}

	var after *portsrepo.ListCursor
	if params.NextToken != "" {
		date, createdAt, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		after = &portsrepo.ListCursor{Date: date, CreatedAt: createdAt, ID: id}
	}

	filter := portsrepo.TransactionFilter{ClientID: params.ClientID, BankAccountID: params.BankAccountID}
	txns, next, err := s.txnRepo.ListTransactions(ctx, workplaceID, filter, params.Limit, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("workplace_id", workplaceID))
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}

	resp := &dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)}
	if next != nil {
		token := pagination.EncodeToken(next.Date, next.CreatedAt, next.ID)
		resp.NextToken = &token
	}
	return resp, nil
}

// --- Helpers ---

// recompute refreshes the owning client's ledger and copies the derived
// balance back onto txn.
func (s *transactionService) recompute(ctx context.Context, workplaceID string, txn *domain.Transaction) error {
	if txn.IsInternalMovement() {
		return nil
	}
	ledger, err := s.ledger.RecomputeClientLedger(ctx, workplaceID, txn.ClientID)
	if err != nil {
		return err
	}
	for _, entry := range ledger {
		if entry.TransactionID == txn.TransactionID {
			txn.BalanceAfter = entry.BalanceAfter
			break
		}
	}
	return nil
}

func (s *transactionService) uploadReceipt(ctx context.Context, workplaceID string, receipt portssvc.ReceiptFile) (string, error) {
	if err := ValidateReceipt(receipt); err != nil {
		return "", err
	}
	if s.uploader == nil {
		return "", fmt.Errorf("%w: no receipt storage configured", apperrors.ErrUpload)
	}
	url, err := s.uploader.Upload(ctx, workplaceID, receipt)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload receipt",
			slog.String("workplace_id", workplaceID),
			slog.String("filename", receipt.Filename))
		return "", fmt.Errorf("%w: %w", apperrors.ErrUpload, err)
	}
	return url, nil
}

// report sends the single notification every write operation produces.
func (s *transactionService) report(ctx context.Context, verb string, err error) {
	if err == nil {
		s.notifier.Notify(ctx, "Transaction "+verb+".", portssvc.NotifySuccess)
		return
	}

	msg := apperrors.UserMessage(err)
	var stageErr *StageError
	if errors.As(err, &stageErr) && stageErr.Partial() {
		msg = fmt.Sprintf("Transaction %s, but a follow-up step failed. %s", verb, msg)
	}
	s.notifier.Notify(ctx, msg, portssvc.NotifyError)
}

// applyRequest copies the request onto txn and validates the result.
func applyRequest(txn *domain.Transaction, req dto.TransactionRequest) error {
	date, err := req.ParsedDate()
	if err != nil {
		return fmt.Errorf("%w: invalid transaction date: %w", apperrors.ErrValidation, err)
	}

	kind := domain.TransactionKind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	clientID := strings.TrimSpace(req.ClientID)
	if kind.IsBankOnly() && clientID == "" {
		clientID = domain.InternalMovementClientID
	}

	txn.ClientID = clientID
	txn.TransactionDate = date
	txn.Kind = kind
	txn.Amount = req.Amount
	txn.InterestPaid = req.InterestPaid
	txn.CapitalPaid = req.CapitalPaid
	txn.BankAccountID = nonEmpty(req.BankAccountID)
	txn.Notes = strings.TrimSpace(req.Notes)
	txn.RelatedTransactionID = nonEmpty(req.RelatedTransactionID)
	txn.RelatedClientID = nonEmpty(req.RelatedClientID)
	if req.ReceiptURL != nil {
		txn.ReceiptURL = nonEmpty(req.ReceiptURL)
	}

	if err := txn.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func describe(txn domain.Transaction) string {
	if txn.IsInternalMovement() {
		return fmt.Sprintf("%s of %s on %s", txn.Kind, txn.Amount.StringFixed(2), txn.TransactionDate.Format(dto.DateLayout))
	}
	return fmt.Sprintf("%s of %s for client %s on %s", txn.Kind, txn.Amount.StringFixed(2), txn.ClientID, txn.TransactionDate.Format(dto.DateLayout))
}
