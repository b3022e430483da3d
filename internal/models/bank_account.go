package models

import "github.com/shopspring/decimal"

// BankAccount is a row of the bank_accounts table.
type BankAccount struct {
	BankAccountID string              `db:"bank_account_id"`
	WorkplaceID   string              `db:"workplace_id"`
	Name          string              `db:"name"`
	AccountNumber *string             `db:"account_number"`
	Balance       decimal.NullDecimal `db:"balance"`
	IsCash        bool                `db:"is_cash"`
	AuditFields
}
