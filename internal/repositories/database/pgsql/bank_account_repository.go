package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

const bankAccountSelectQuery = `
SELECT
	bank_account_id, workplace_id, name, account_number, balance, is_cash,
	created_at, created_by, last_updated_at, last_updated_by
FROM bank_accounts
`

func (r *PgxBankAccountRepository) getBankAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, bankAccountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank accounts", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BankAccount])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect bank account rows", err)
	}
	return mapping.ToDomainBankAccountSlice(modelAccounts), nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	return r.getBankAccounts(ctx, `WHERE workplace_id = $1 ORDER BY name ASC, bank_account_id ASC`, workplaceID)
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, workplaceID, bankAccountID string) (*domain.BankAccount, error) {
	accounts, err := r.getBankAccounts(ctx, `WHERE workplace_id = $1 AND bank_account_id = $2`, workplaceID, bankAccountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &accounts[0], nil
}

// UpdateBankAccountBalance writes the absolute balance computed by the caller.
func (r *PgxBankAccountRepository) UpdateBankAccountBalance(ctx context.Context, workplaceID, bankAccountID string, balance decimal.Decimal, userID string, updatedAt time.Time) error {
	query := `
		UPDATE bank_accounts
		SET balance = $3, last_updated_by = $4, last_updated_at = $5
		WHERE workplace_id = $1 AND bank_account_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, workplaceID, bankAccountID, balance, userID, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance of bank account "+bankAccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
