package accounting

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Effect returns the signed change a transaction makes to a client's capital balance.
// This table is the only place balance semantics are encoded.
//
//	DISBURSEMENT, REFINANCE, REDIRECT_IN  -> +amount
//	PAYMENT_CAPITAL, REDIRECT_OUT, SETTLEMENT -> -amount
//	PAYMENT_INTEREST and bank-only kinds  -> 0
func Effect(kind domain.TransactionKind, amount decimal.Decimal) decimal.Decimal {
	switch kind {
	case domain.Disbursement, domain.Refinance, domain.RedirectIn:
		return amount
	case domain.PaymentCapital, domain.RedirectOut, domain.Settlement:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}
