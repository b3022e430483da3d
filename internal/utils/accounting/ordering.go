package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// dayKey collapses a date to its calendar day so that time-of-day never affects order.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// createdKey treats a missing creation timestamp as 0, i.e. the earliest.
func createdKey(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// CompareLedgerOrder orders by calendar date, then creation timestamp, then ID.
// The ID tie-break makes the order total.
func CompareLedgerOrder(a, b domain.Transaction) int {
	if da, db := dayKey(a.TransactionDate), dayKey(b.TransactionDate); da != db {
		if da < db {
			return -1
		}
		return 1
	}
	if ca, cb := createdKey(a.CreatedAt), createdKey(b.CreatedAt); ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}
	return strings.Compare(a.TransactionID, b.TransactionID)
}

// SortLedger sorts transactions in place into ledger order.
func SortLedger(transactions []domain.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return CompareLedgerOrder(transactions[i], transactions[j]) < 0
	})
}
