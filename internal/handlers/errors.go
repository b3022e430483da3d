package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/SscSPs/lending_ledger_app/internal/core/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError writes the user-facing form of err. Raw causes only go to the log.
func respondError(c *gin.Context, err error, logMsg string) {
	respondWriteError(c, err, nil, logMsg)
}

// respondWriteError is respondError for transaction writes. When the record
// was persisted before a later step failed, the stored record is returned too.
func respondWriteError(c *gin.Context, err error, txn *domain.Transaction, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}

	resp := dto.ErrorResponse{Error: apperrors.UserMessage(err)}
	var stageErr *services.StageError
	if errors.As(err, &stageErr) && stageErr.Partial() {
		resp.Stage = string(stageErr.Stage)
		if txn != nil {
			r := dto.ToTransactionResponse(txn)
			resp.Transaction = &r
		}
	}
	c.JSON(status, resp)
}

// requireUser returns the authenticated user or aborts with 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// badRequest rejects a request that could not be bound. The client only
// sees which fields were invalid; the raw cause is logged.
func badRequest(c *gin.Context, err error, logMsg string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(logMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingMessage(err)})
}

func bindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request format."
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	verb := "is"
	if len(fields) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("Invalid request format: %s %s invalid", strings.Join(fields, ", "), verb)
}
