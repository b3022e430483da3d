package dto

// ErrorResponse is the body of every failed request. Stage is set when a
// write failed after some of its steps had already taken effect.
type ErrorResponse struct {
	Error       string               `json:"error"`
	Stage       string               `json:"stage,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}
