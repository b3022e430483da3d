package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler serves bank account balances.
type bankAccountHandler struct {
	bankSyncService portssvc.BankSyncSvc
}

// RegisterBankAccountRoutes registers bank account routes under a workplace group.
func RegisterBankAccountRoutes(rg *gin.RouterGroup, bankSyncService portssvc.BankSyncSvc) {
	h := &bankAccountHandler{bankSyncService: bankSyncService}

	accounts := rg.Group("/bank-accounts")
	{
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:bankAccountID", h.getBankAccount)
	}
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank-accounts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Success 200 {object} dto.ListBankAccountsResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	accounts, err := h.bankSyncService.ListBankAccounts(c.Request.Context(), c.Param("workplaceID"), userID)
	if err != nil {
		respondError(c, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountsResponse(accounts))
}

// getBankAccount godoc
// @Summary Get a bank account
// @Tags bank-accounts
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} dto.ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/bank-accounts/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	account, err := h.bankSyncService.GetBankAccount(c.Request.Context(), c.Param("workplaceID"), c.Param("bankAccountID"), userID)
	if err != nil {
		respondError(c, err, "Failed to get bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}
