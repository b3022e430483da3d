package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// Amount columns are nullable for rows imported from older spreadsheets.
type Transaction struct {
	TransactionID        string              `db:"transaction_id"`
	WorkplaceID          string              `db:"workplace_id"`
	ClientID             string              `db:"client_id"`
	TransactionDate      time.Time           `db:"transaction_date"`
	Kind                 string              `db:"kind"`
	Amount               decimal.NullDecimal `db:"amount"`
	InterestPaid         decimal.NullDecimal `db:"interest_paid"`
	CapitalPaid          decimal.NullDecimal `db:"capital_paid"`
	BalanceAfter         decimal.NullDecimal `db:"balance_after"`
	BankAccountID        *string             `db:"bank_account_id"`
	Notes                *string             `db:"notes"`
	ReceiptURL           *string             `db:"receipt_url"`
	RelatedTransactionID *string             `db:"related_transaction_id"`
	RelatedClientID      *string             `db:"related_client_id"`
	AuditFields
}
