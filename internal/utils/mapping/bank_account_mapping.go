package mapping

import (
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/models"
	"github.com/SscSPs/lending_ledger_app/internal/utils/money"
)

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	var number string
	if m.AccountNumber != nil {
		number = *m.AccountNumber
	}
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		WorkplaceID:   m.WorkplaceID,
		Name:          m.Name,
		AccountNumber: number,
		Balance:       money.Coerce(m.Balance),
		IsCash:        m.IsCash,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to a slice of domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
