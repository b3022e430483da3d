package repositories

import "time"

// TransactionFilter narrows a transaction listing. Empty fields match everything.
type TransactionFilter struct {
	ClientID      string
	BankAccountID string
}

// ListCursor is the decoded position of the last row of a previous page, in
// ledger order (date, creation time, ID).
type ListCursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}
