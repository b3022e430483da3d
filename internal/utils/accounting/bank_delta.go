package accounting

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// IsOutgoing reports whether money leaves the bank account for this kind.
func IsOutgoing(kind domain.TransactionKind) bool {
	switch kind {
	case domain.Disbursement, domain.Refinance, domain.Withdrawal:
		return true
	}
	return false
}

// BankDelta is the signed change a newly recorded transaction makes to its bank account.
// Outgoing money is negative; everything else brings in amount plus interest.
func BankDelta(txn domain.Transaction) decimal.Decimal {
	if IsOutgoing(txn.Kind) {
		return txn.Amount.Neg()
	}
	return money.Add(txn.Amount, txn.InterestPaid)
}

// ReversalDelta undoes BankDelta for a transaction being deleted.
func ReversalDelta(txn domain.Transaction) decimal.Decimal {
	return BankDelta(txn).Neg()
}

// UpdateDelta is the bank change applied when prev is edited into next.
// Unless diffed is set the full amount of next is applied as a fresh delta,
// which double counts edits on linked accounts; see DESIGN.md.
func UpdateDelta(prev, next domain.Transaction, diffed bool) decimal.Decimal {
	if !diffed {
		return BankDelta(next)
	}
	return money.Add(BankDelta(next), ReversalDelta(prev))
}
