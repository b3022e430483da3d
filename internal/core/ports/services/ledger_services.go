package services

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRecomputer rebuilds derived client balances.
type LedgerRecomputer interface {
	// RecomputeClientLedger replays a client's history and stores every
	// resulting BalanceAfter. An empty history is a no-op.
	RecomputeClientLedger(ctx context.Context, workplaceID, clientID string) ([]domain.Transaction, error)

	// RecomputeWorkplace recomputes every client ledger of a workplace and
	// returns how many clients were processed.
	RecomputeWorkplace(ctx context.Context, workplaceID, userID string) (int, error)
}

// LedgerReaderSvc exposes the derived ledger.
type LedgerReaderSvc interface {
	// GetClientLedger returns a client's transactions in ledger order.
	GetClientLedger(ctx context.Context, workplaceID, clientID, userID string) ([]domain.Transaction, error)

	// GetClientBalance returns the balance after the last ledger entry.
	GetClientBalance(ctx context.Context, workplaceID, clientID, userID string) (decimal.Decimal, error)
}

// LedgerSvc combines ledger recompute and read operations.
type LedgerSvc interface {
	LedgerRecomputer
	LedgerReaderSvc
}
