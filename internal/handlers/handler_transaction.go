package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// RegisterTransactionRoutes registers transaction routes under a workplace group.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID", h.getTransaction)
		txns.PUT("/:transactionID", h.updateTransaction)
		txns.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// errReceiptRead is returned when the multipart receipt part cannot be opened.
var errReceiptRead = errors.New("receipt could not be read")

// bindTransactionRequest reads a TransactionRequest from a JSON body, or from
// the "payload" field of a multipart form with an optional "receipt" file.
// The returned cleanup must be called once the receipt has been consumed.
func bindTransactionRequest(c *gin.Context) (dto.TransactionRequest, *portssvc.ReceiptFile, func(), error) {
	var req dto.TransactionRequest
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, nil, noop, err
		}
		return req, nil, noop, nil
	}

	if err := json.Unmarshal([]byte(c.PostForm("payload")), &req); err != nil {
		return req, nil, noop, err
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, nil, noop, err
	}

	fh, err := c.FormFile("receipt")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, noop, nil
	}
	if err != nil {
		return req, nil, noop, errors.Join(errReceiptRead, err)
	}
	f, err := fh.Open()
	if err != nil {
		return req, nil, noop, errors.Join(errReceiptRead, err)
	}
	receipt := &portssvc.ReceiptFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}
	return req, receipt, func() { _ = f.Close() }, nil
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a transaction, syncs the linked bank account and recomputes the client's ledger.
// @Description Send JSON, or multipart/form-data with the JSON in "payload" and an optional "receipt" file.
// @Tags transactions
// @Accept json,mpfd
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 502 {object} dto.ErrorResponse "A downstream step failed; stage tells how far it got"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplaceID")

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	req, receipt, cleanup, err := bindTransactionRequest(c)
	defer cleanup()
	if err != nil {
		badRequest(c, err, "Failed to bind transaction request")
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("workplace_id", workplaceID),
		slog.String("kind", req.Kind),
		slog.Bool("has_receipt", receipt != nil))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), workplaceID, req, receipt, userID)
	if err != nil {
		respondWriteError(c, err, txn, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("workplaceID"), c.Param("transactionID"), userID)
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Pages through transactions in ledger order.
// @Tags transactions
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param clientID query string false "Only this client"
// @Param bankAccountID query string false "Only this bank account"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Failed to bind list transactions query")
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("workplaceID"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces a transaction's fields, keeping who created it and when.
// @Tags transactions
// @Accept json,mpfd
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 502 {object} dto.ErrorResponse "A downstream step failed"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplaceID")
	transactionID := c.Param("transactionID")

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	req, receipt, cleanup, err := bindTransactionRequest(c)
	defer cleanup()
	if err != nil {
		badRequest(c, err, "Failed to bind transaction request")
		return
	}

	logger.Info("Received request to update transaction",
		slog.String("workplace_id", workplaceID),
		slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), workplaceID, transactionID, req, receipt, userID)
	if err != nil {
		respondWriteError(c, err, txn, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction and reverses its bank effect.
// @Tags transactions
// @Param workplaceID path string true "Workplace ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 502 {object} dto.ErrorResponse "A downstream step failed"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("workplaceID"), c.Param("transactionID"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
