package pgsql

import (
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository. The audit
// repository may be swapped for another backend by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		AuditRepo:       NewPgxAuditRepository(dbPool),
		WorkplaceRepo:   newPgxWorkplaceRepository(dbPool),
	}
}
