package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/services"
)

// AuditHandler serves the persisted audit trail. auditSvc is nil when no
// database is configured and every route answers 503.
type AuditHandler struct {
	auditSvc *services.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditSvc *services.AuditService) *AuditHandler {
	return &AuditHandler{
		auditSvc: auditSvc,
	}
}

// History handles GET /vaults/:address/history
// @Summary Persisted event history of a vault
// @Description Events from the audit log, including those of earlier runs, oldest first
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} models.EventLogEntry
// @Failure 503 {object} models.ErrorResponse
// @Router /vaults/{address}/history [get]
func (h *AuditHandler) History(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	entries, err := h.auditSvc.History(c.Request.Context(), addr, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Snapshot handles GET /vaults/:address/snapshot
// @Summary Last persisted snapshot of a vault
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Success 200 {object} models.VaultSummary
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /vaults/{address}/snapshot [get]
func (h *AuditHandler) Snapshot(c *gin.Context) {
	addr, ok := addressParam(c, "address")
	if !ok {
		return
	}

	summary, err := h.auditSvc.Snapshot(c.Request.Context(), addr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
