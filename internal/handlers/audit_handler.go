package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Operation Logs
// @Description Audit trail of a contract, newest first
// @Tags Audit
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Router /contracts/{contract_id}/operation_logs [get]
func (h *AuditHandler) IndexByContract(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	logs, err := h.auditService.ListByContract(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"operation_logs": logs})
}
