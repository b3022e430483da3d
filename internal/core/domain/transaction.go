package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a financial event.
type TransactionKind string

const (
	Disbursement    TransactionKind = "DISBURSEMENT"
	Refinance       TransactionKind = "REFINANCE"
	PaymentCapital  TransactionKind = "PAYMENT_CAPITAL"
	PaymentInterest TransactionKind = "PAYMENT_INTEREST"
	RedirectIn      TransactionKind = "REDIRECT_IN"
	RedirectOut     TransactionKind = "REDIRECT_OUT"
	Settlement      TransactionKind = "SETTLEMENT"

	// Bank-only kinds. They move cash but never touch a client balance.
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// InternalMovementClientID marks a transaction that belongs to no client,
// e.g. a cash deposit into the drawer.
const InternalMovementClientID = "INTERNAL"

// TransactionKinds lists every known kind.
var TransactionKinds = []TransactionKind{
	Disbursement, Refinance, PaymentCapital, PaymentInterest,
	RedirectIn, RedirectOut, Settlement, Deposit, Withdrawal,
}

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	for _, known := range TransactionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsBankOnly reports whether k only affects bank accounts.
func (k TransactionKind) IsBankOnly() bool {
	return k == Deposit || k == Withdrawal
}

// Transaction is a single financial event on a client's ledger or a bank account.
// BalanceAfter is derived by the ledger recompute and is never trusted as input.
type Transaction struct {
	TransactionID        string          `json:"transactionID"`
	WorkplaceID          string          `json:"workplaceID"` // Tenant scope, never stripped
	ClientID             string          `json:"clientID"`    // InternalMovementClientID for bank-only movements
	TransactionDate      time.Time       `json:"transactionDate"`
	Kind                 TransactionKind `json:"kind"`
	Amount               decimal.Decimal `json:"amount"`
	InterestPaid         decimal.Decimal `json:"interestPaid"`
	CapitalPaid          decimal.Decimal `json:"capitalPaid"`
	BalanceAfter         decimal.Decimal `json:"balanceAfter"`
	BankAccountID        *string         `json:"bankAccountID,omitempty"`
	Notes                string          `json:"notes"`
	ReceiptURL           *string         `json:"receiptURL,omitempty"`
	RelatedTransactionID *string         `json:"relatedTransactionID,omitempty"`
	RelatedClientID      *string         `json:"relatedClientID,omitempty"`
	AuditFields
}

// IsInternalMovement reports whether the transaction belongs to no client ledger.
func (t Transaction) IsInternalMovement() bool {
	return t.ClientID == "" || t.ClientID == InternalMovementClientID
}

// HasBankAccount reports whether a bank account is linked.
func (t Transaction) HasBankAccount() bool {
	return t.BankAccountID != nil && *t.BankAccountID != ""
}

// Validate checks the invariants a transaction must satisfy before it is stored.
func (t Transaction) Validate() error {
	if t.WorkplaceID == "" {
		return fmt.Errorf("workplace ID is required")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if t.InterestPaid.IsNegative() || t.CapitalPaid.IsNegative() {
		return fmt.Errorf("paid amounts must not be negative")
	}
	if t.TransactionDate.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if t.Kind.IsBankOnly() && !t.IsInternalMovement() {
		return fmt.Errorf("%s transactions cannot belong to a client", t.Kind)
	}
	if !t.Kind.IsBankOnly() && t.IsInternalMovement() {
		return fmt.Errorf("%s transactions require a client", t.Kind)
	}
	if t.Kind.IsBankOnly() && !t.HasBankAccount() {
		return fmt.Errorf("%s transactions require a bank account", t.Kind)
	}
	return nil
}
