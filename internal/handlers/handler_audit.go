package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// auditHandler serves the workplace audit log.
type auditHandler struct {
	auditService portssvc.AuditSvc
}

// RegisterAuditRoutes registers audit log routes under a workplace group.
func RegisterAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvc) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit-logs", h.listAuditEntries)
}

// listAuditEntries godoc
// @Summary List audit log entries
// @Description Newest first. Admin only.
// @Tags audit
// @Produce json
// @Param workplaceID path string true "Workplace ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/audit-logs [get]
func (h *auditHandler) listAuditEntries(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var params dto.ListAuditEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Failed to bind list audit entries query")
		return
	}

	resp, err := h.auditService.ListAuditEntries(c.Request.Context(), c.Param("workplaceID"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
