package domain

import "github.com/shopspring/decimal"

// BankAccount is a bank or cash-drawer account. Its Balance is authoritative
// and only ever changed by incremental deltas from the bank sync.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"`
	WorkplaceID   string          `json:"workplaceID"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"accountNumber"` // Empty for cash drawers
	Balance       decimal.Decimal `json:"balance"`
	IsCash        bool            `json:"isCash"`
	AuditFields
}
