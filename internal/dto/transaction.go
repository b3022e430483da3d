package dto

import (
	"time"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for transaction dates.
const DateLayout = "2006-01-02"

// TransactionRequest is the body for creating or updating a transaction.
// For multipart requests the same JSON is sent in the "payload" field.
type TransactionRequest struct {
	ClientID             string          `json:"clientID"`
	TransactionDate      string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Kind                 string          `json:"kind" binding:"required,txkind"`
	Amount               decimal.Decimal `json:"amount" binding:"decimal_gte0"`
	InterestPaid         decimal.Decimal `json:"interestPaid" binding:"decimal_gte0"`
	CapitalPaid          decimal.Decimal `json:"capitalPaid" binding:"decimal_gte0"`
	BankAccountID        *string         `json:"bankAccountID"`
	Notes                string          `json:"notes" binding:"max=2000"`
	ReceiptURL           *string         `json:"receiptURL"`
	RelatedTransactionID *string         `json:"relatedTransactionID"`
	RelatedClientID      *string         `json:"relatedClientID"`
}

// ParsedDate returns TransactionDate as a UTC day.
func (r TransactionRequest) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.TransactionDate)
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	WorkplaceID          string          `json:"workplaceID"`
	ClientID             string          `json:"clientID"`
	TransactionDate      string          `json:"transactionDate"`
	Kind                 string          `json:"kind"`
	Amount               decimal.Decimal `json:"amount"`
	InterestPaid         decimal.Decimal `json:"interestPaid"`
	CapitalPaid          decimal.Decimal `json:"capitalPaid"`
	BalanceAfter         decimal.Decimal `json:"balanceAfter"`
	BankAccountID        *string         `json:"bankAccountID,omitempty"`
	Notes                string          `json:"notes"`
	ReceiptURL           *string         `json:"receiptURL,omitempty"`
	RelatedTransactionID *string         `json:"relatedTransactionID,omitempty"`
	RelatedClientID      *string         `json:"relatedClientID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy        string          `json:"lastUpdatedBy"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	ClientID      string `form:"clientID"`
	BankAccountID string `form:"bankAccountID"`
	Limit         int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken     string `form:"nextToken"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ClientLedgerResponse is a client's ordered ledger with its balance.
type ClientLedgerResponse struct {
	ClientID     string                `json:"clientID"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ClientBalanceResponse is a client's derived balance.
type ClientBalanceResponse struct {
	ClientID string          `json:"clientID"`
	Balance  decimal.Decimal `json:"balance"`
}

// RecomputeLedgerResponse reports a workplace-wide recompute.
type RecomputeLedgerResponse struct {
	ClientsRecomputed int `json:"clientsRecomputed"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		WorkplaceID:          txn.WorkplaceID,
		ClientID:             txn.ClientID,
		TransactionDate:      txn.TransactionDate.Format(DateLayout),
		Kind:                 string(txn.Kind),
		Amount:               txn.Amount,
		InterestPaid:         txn.InterestPaid,
		CapitalPaid:          txn.CapitalPaid,
		BalanceAfter:         txn.BalanceAfter,
		BankAccountID:        txn.BankAccountID,
		Notes:                txn.Notes,
		ReceiptURL:           txn.ReceiptURL,
		RelatedTransactionID: txn.RelatedTransactionID,
		RelatedClientID:      txn.RelatedClientID,
		CreatedAt:            txn.CreatedAt,
		CreatedBy:            txn.CreatedBy,
		LastUpdatedAt:        txn.LastUpdatedAt,
		LastUpdatedBy:        txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
