package services

import (
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/core/state"
	"github.com/SscSPs/lending_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	uploader portssvc.ReceiptUploader,
	notifier portssvc.Notifier,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Permission first: every other service authorizes through it.
	container.Permission = NewPermissionService(repos.WorkplaceRepo)
	container.Audit = NewAuditService(repos.AuditRepo, container.Permission)

	store := NewWorkplaceState(state.NewCache(), repos.TransactionRepo, repos.BankAccountRepo)

	container.BankSync = NewBankSyncService(repos.BankAccountRepo, store, container.Audit, container.Permission)
	container.Ledger = NewLedgerService(repos.TransactionRepo, store, container.Audit, container.Permission)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		store,
		container.Ledger,
		container.BankSync,
		container.Audit,
		container.Permission,
		WithReceiptUploader(uploader),
		WithNotifier(notifier),
		WithBankDeltaDiffOnUpdate(cfg.BankSyncDiffOnUpdate),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PermissionSvc        = (*permissionService)(nil)
	_ portssvc.AuditSvc             = (*auditService)(nil)
	_ portssvc.BankSyncSvc          = (*bankSyncService)(nil)
	_ portssvc.LedgerSvc            = (*ledgerService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
