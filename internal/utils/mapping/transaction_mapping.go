package mapping

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var notes *string
	if d.Notes != "" {
		notes = &d.Notes
	}
	return models.Transaction{
		TransactionID:        d.TransactionID,
		WorkplaceID:          d.WorkplaceID,
		ClientID:             d.ClientID,
		TransactionDate:      d.TransactionDate,
		Kind:                 string(d.Kind),
		Amount:               decimal.NewNullDecimal(d.Amount),
		InterestPaid:         decimal.NewNullDecimal(d.InterestPaid),
		CapitalPaid:          decimal.NewNullDecimal(d.CapitalPaid),
		BalanceAfter:         decimal.NewNullDecimal(d.BalanceAfter),
		BankAccountID:        d.BankAccountID,
		Notes:                notes,
		ReceiptURL:           d.ReceiptURL,
		RelatedTransactionID: d.RelatedTransactionID,
		RelatedClientID:      d.RelatedClientID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// NULL amounts become zero and a blank client marks an internal movement.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	clientID := m.ClientID
	if clientID == "" {
		clientID = domain.InternalMovementClientID
	}
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		WorkplaceID:          m.WorkplaceID,
		ClientID:             clientID,
		TransactionDate:      m.TransactionDate.UTC(),
		Kind:                 domain.TransactionKind(m.Kind),
		Amount:               money.Coerce(m.Amount),
		InterestPaid:         money.Coerce(m.InterestPaid),
		CapitalPaid:          money.Coerce(m.CapitalPaid),
		BalanceAfter:         money.Coerce(m.BalanceAfter),
		BankAccountID:        m.BankAccountID,
		Notes:                notes,
		ReceiptURL:           m.ReceiptURL,
		RelatedTransactionID: m.RelatedTransactionID,
		RelatedClientID:      m.RelatedClientID,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
