package apperrors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// GenericMessage is shown whenever an error cannot be mapped to a known case.
const GenericMessage = "Something went wrong. Please try again or contact support."

// Friendly strings for PostgreSQL error codes the store is known to return.
var pgCodeMessages = map[string]string{
	"23505": "A record with the same identifier already exists.",
	"23503": "The record references data that no longer exists.",
	"23514": "The submitted values are not allowed for this record.",
	"23502": "A required field is missing.",
	"42501": "You do not have permission to change this data.",
	"40001": "The data changed while saving. Please retry.",
	"57014": "The operation took too long and was cancelled. Please retry.",
}

// UserMessage translates an error into a fixed, user-readable string.
// Raw driver or protocol errors are never returned.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := pgCodeMessages[pgErr.Code]; ok {
			return msg
		}
		return GenericMessage
	}

	switch {
	case errors.Is(err, ErrForbidden):
		return "You do not have permission to perform this action."
	case errors.Is(err, ErrValidation):
		return "Some of the submitted information is invalid."
	case errors.Is(err, ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, ErrDuplicate):
		return pgCodeMessages["23505"]
	case errors.Is(err, ErrUpload):
		return "The receipt could not be uploaded. Nothing was saved."
	case errors.Is(err, ErrSync):
		return "The bank balance could not be updated and was left unchanged. Please review the account balance."
	case errors.Is(err, ErrRecompute):
		return "The client balance could not be refreshed. Please retry the recompute."
	case errors.Is(err, ErrPersistence):
		return "Changes could not be saved because of a sync error. Please retry."
	}
	return GenericMessage
}

// HTTPStatus maps an error to the status code handlers respond with.
func HTTPStatus(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUpload), errors.Is(err, ErrSync), errors.Is(err, ErrRecompute), errors.Is(err, ErrPersistence):
		return http.StatusBadGateway
	case errors.As(err, &appErr) && appErr.Code >= 400:
		return appErr.Code
	}
	return http.StatusInternalServerError
}
