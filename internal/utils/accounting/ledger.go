package accounting

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// RecomputeLedger replays every transaction of clientID found in all and returns
// them in ledger order with BalanceAfter set. The input slice is not modified.
// Internal bank movements never form a ledger, so they yield nil.
func RecomputeLedger(clientID string, all []domain.Transaction) []domain.Transaction {
	if clientID == "" || clientID == domain.InternalMovementClientID {
		return nil
	}

	ledger := make([]domain.Transaction, 0)
	for _, txn := range all {
		if txn.ClientID == clientID {
			ledger = append(ledger, txn)
		}
	}
	if len(ledger) == 0 {
		return nil
	}

	SortLedger(ledger)

	running := decimal.Zero
	for i := range ledger {
		running = money.SnapToZero(money.Add(running, Effect(ledger[i].Kind, ledger[i].Amount)))
		ledger[i].BalanceAfter = running
	}
	return ledger
}

// ClientBalance is the BalanceAfter of the last transaction in an ordered ledger.
func ClientBalance(ledger []domain.Transaction) decimal.Decimal {
	if len(ledger) == 0 {
		return decimal.Zero
	}
	return ledger[len(ledger)-1].BalanceAfter
}

// ClientIDs returns the distinct client IDs present in transactions, skipping
// internal movements, in first-seen order.
func ClientIDs(transactions []domain.Transaction) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, txn := range transactions {
		if txn.IsInternalMovement() {
			continue
		}
		if _, ok := seen[txn.ClientID]; ok {
			continue
		}
		seen[txn.ClientID] = struct{}{}
		ids = append(ids, txn.ClientID)
	}
	return ids
}
