package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelectQuery = `
SELECT
	transaction_id, workplace_id, client_id, transaction_date, kind,
	amount, interest_paid, capital_paid, balance_after,
	bank_account_id, notes, receipt_url, related_transaction_id, related_client_id,
	created_at, created_by, last_updated_at, last_updated_by
FROM transactions
`

const ledgerOrder = ` ORDER BY transaction_date ASC, created_at ASC, transaction_id ASC`

// The WHERE on the update keeps an upsert from moving a row to another workplace.
const transactionUpsertQuery = `
INSERT INTO transactions (
	transaction_id, workplace_id, client_id, transaction_date, kind,
	amount, interest_paid, capital_paid, balance_after,
	bank_account_id, notes, receipt_url, related_transaction_id, related_client_id,
	created_at, created_by, last_updated_at, last_updated_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (transaction_id) DO UPDATE SET
	client_id = EXCLUDED.client_id,
	transaction_date = EXCLUDED.transaction_date,
	kind = EXCLUDED.kind,
	amount = EXCLUDED.amount,
	interest_paid = EXCLUDED.interest_paid,
	capital_paid = EXCLUDED.capital_paid,
	balance_after = EXCLUDED.balance_after,
	bank_account_id = EXCLUDED.bank_account_id,
	notes = EXCLUDED.notes,
	receipt_url = EXCLUDED.receipt_url,
	related_transaction_id = EXCLUDED.related_transaction_id,
	related_client_id = EXCLUDED.related_client_id,
	last_updated_at = EXCLUDED.last_updated_at,
	last_updated_by = EXCLUDED.last_updated_by
WHERE transactions.workplace_id = EXCLUDED.workplace_id;
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) ListTransactionsByWorkplace(ctx context.Context, workplaceID string) ([]domain.Transaction, error) {
	return r.getTransactions(ctx, `WHERE workplace_id = $1`+ledgerOrder, workplaceID)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, workplaceID, transactionID string) (*domain.Transaction, error) {
	txns, err := r.getTransactions(ctx, `WHERE workplace_id = $1 AND transaction_id = $2`, workplaceID, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &txns[0], nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, workplaceID string, filter portsrepo.TransactionFilter, limit int, after *portsrepo.ListCursor) ([]domain.Transaction, *portsrepo.ListCursor, error) {
	conds := []string{"workplace_id = $1"}
	args := []any{workplaceID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ClientID != "" {
		conds = append(conds, "client_id = "+arg(filter.ClientID))
	}
	if filter.BankAccountID != "" {
		conds = append(conds, "bank_account_id = "+arg(filter.BankAccountID))
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(transaction_date, created_at, transaction_id) > (%s, %s, %s)",
			arg(after.Date), arg(after.CreatedAt), arg(after.ID)))
	}

	// Fetch one extra row to know whether another page exists.
	query := "WHERE " + strings.Join(conds, " AND ") + ledgerOrder + " LIMIT " + arg(limit+1)
	txns, err := r.getTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	if len(txns) <= limit {
		return txns, nil, nil
	}
	txns = txns[:limit]
	last := txns[len(txns)-1]
	return txns, &portsrepo.ListCursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID}, nil
}

func (r *PgxTransactionRepository) UpsertTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(transactionUpsertQuery,
			m.TransactionID,
			m.WorkplaceID,
			m.ClientID,
			m.TransactionDate,
			m.Kind,
			m.Amount,
			m.InterestPaid,
			m.CapitalPaid,
			m.BalanceAfter,
			m.BankAccountID,
			m.Notes,
			m.ReceiptURL,
			m.RelatedTransactionID,
			m.RelatedClientID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to upsert %d transactions", len(transactions)), err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, workplaceID, transactionID string) error {
	query := `DELETE FROM transactions WHERE workplace_id = $1 AND transaction_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, workplaceID, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
