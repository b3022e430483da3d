package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainTransaction_CoercesNulls(t *testing.T) {
	m := models.Transaction{
		TransactionID:   "t1",
		WorkplaceID:     "wp-1",
		TransactionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("IST", 19800)),
		Kind:            "DEPOSIT",
		Amount:          decimal.NewNullDecimal(decimal.RequireFromString("250.50")),
	}

	d := ToDomainTransaction(m)

	assert.Equal(t, domain.InternalMovementClientID, d.ClientID)
	assert.True(t, d.InterestPaid.IsZero())
	assert.True(t, d.CapitalPaid.IsZero())
	assert.True(t, d.BalanceAfter.IsZero())
	assert.Equal(t, "250.5", d.Amount.String())
	assert.Equal(t, time.UTC, d.TransactionDate.Location())
	assert.Empty(t, d.Notes)
}

func TestToModelTransaction_KeepsTenantAndBlankNotes(t *testing.T) {
	d := domain.Transaction{
		TransactionID: "t1",
		WorkplaceID:   "wp-1",
		ClientID:      "c1",
		Kind:          domain.PaymentInterest,
		Amount:        decimal.NewFromInt(10),
	}

	m := ToModelTransaction(d)

	assert.Equal(t, "wp-1", m.WorkplaceID)
	assert.Nil(t, m.Notes)
	assert.True(t, m.Amount.Valid)
	assert.True(t, m.BalanceAfter.Valid)

	d.Notes = "paid in cash"
	assert.Equal(t, "paid in cash", *ToModelTransaction(d).Notes)
}
