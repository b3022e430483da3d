package dto

import (
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	WorkplaceID   string          `json:"workplaceID"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	IsCash        bool            `json:"isCash"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListBankAccountsResponse wraps a list of bank accounts.
type ListBankAccountsResponse struct {
	BankAccounts []BankAccountResponse `json:"bankAccounts"`
}

// ToBankAccountResponse converts domain.BankAccount to DTO.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: a.BankAccountID,
		WorkplaceID:   a.WorkplaceID,
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		IsCash:        a.IsCash,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListBankAccountsResponse converts a slice of domain.BankAccount to the list DTO.
func ToListBankAccountsResponse(accounts []domain.BankAccount) ListBankAccountsResponse {
	list := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToBankAccountResponse(&accounts[i])
	}
	return ListBankAccountsResponse{BankAccounts: list}
}
