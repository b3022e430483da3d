package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/SscSPs/lending_ledger_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves derived client ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// RegisterLedgerRoutes registers client ledger routes under a workplace group.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}

	rg.GET("/clients/:clientID/ledger", h.getClientLedger)
	rg.GET("/clients/:clientID/balance", h.getClientBalance)
	rg.POST("/ledger/recompute", h.recomputeWorkplace)
}

// getClientLedger godoc
// @Summary Get a client's ledger
// @Description Returns the client's transactions in ledger order with the running balance.
// @Tags ledger
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.ClientLedgerResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/clients/{clientID}/ledger [get]
func (h *ledgerHandler) getClientLedger(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	clientID := c.Param("clientID")

	ledger, err := h.ledgerService.GetClientLedger(c.Request.Context(), c.Param("workplaceID"), clientID, userID)
	if err != nil {
		respondError(c, err, "Failed to get client ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ClientLedgerResponse{
		ClientID:     clientID,
		Balance:      accounting.ClientBalance(ledger),
		Transactions: dto.ToTransactionResponses(ledger),
	})
}

// getClientBalance godoc
// @Summary Get a client's balance
// @Tags ledger
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.ClientBalanceResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/clients/{clientID}/balance [get]
func (h *ledgerHandler) getClientBalance(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	clientID := c.Param("clientID")

	balance, err := h.ledgerService.GetClientBalance(c.Request.Context(), c.Param("workplaceID"), clientID, userID)
	if err != nil {
		respondError(c, err, "Failed to get client balance")
		return
	}
	c.JSON(http.StatusOK, dto.ClientBalanceResponse{ClientID: clientID, Balance: balance})
}

// recomputeWorkplace godoc
// @Summary Recompute every client ledger
// @Description Reloads the workplace from the store and recomputes every client's running balances. Admin only.
// @Tags ledger
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Success 200 {object} dto.RecomputeLedgerResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 502 {object} dto.ErrorResponse "A client ledger could not be stored"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/ledger/recompute [post]
func (h *ledgerHandler) recomputeWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplaceID")

	userID, ok := requireUser(c)
	if !ok {
		return
	}

	logger.Info("Received request to recompute workplace ledger", slog.String("workplace_id", workplaceID))
	count, err := h.ledgerService.RecomputeWorkplace(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, err, "Failed to recompute workplace ledger")
		return
	}
	c.JSON(http.StatusOK, dto.RecomputeLedgerResponse{ClientsRecomputed: count})
}
