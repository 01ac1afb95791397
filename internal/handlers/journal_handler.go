package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/middleware"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type JournalHandler struct {
	journalService *services.JournalService
}

func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// @Summary List Journal Entries
// @Description List every posted journal line of a contract
// @Tags Journal
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/journal_entries [get]
func (h *JournalHandler) IndexByContract(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	entries, err := h.journalService.ListByContract(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	balance, err := h.journalService.Balance(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"journal_entries": journalResponses(entries),
		"total_debit":     models.Money(balance.TotalDebit),
		"total_credit":    models.Money(balance.TotalCredit),
		"balanced":        balance.Balanced,
	})
}

// @Summary Preview Amortization Entries
// @Description Return the accrual batch of a contract without posting it
// @Tags Journal
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/journal_entries/preview [get]
func (h *JournalHandler) PreviewAmortization(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	lines, err := h.journalService.PreviewAmortization(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	check := accounting.CheckBalance(lines)
	c.JSON(http.StatusOK, gin.H{
		"entries":      models.NewJournalLineResponses(lines),
		"total_debit":  models.Money(check.TotalDebit),
		"total_credit": models.Money(check.TotalCredit),
		"balanced":     check.Balanced,
	})
}

// @Summary Post Amortization Entries
// @Description Post the accrual batch of a contract. A contract is accrued once.
// @Tags Journal
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param X-Operator-ID header string false "Operator"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{contract_id}/journal_entries/amortization [post]
func (h *JournalHandler) GenerateAmortization(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	entries, err := h.journalService.GenerateAmortization(c.Request.Context(), contractID, middleware.GetOperator(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"journal_entries": journalResponses(entries)})
}

func journalResponses(entries []models.JournalEntry) []models.JournalEntryResponse {
	out := make([]models.JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = entries[i].ToResponse()
	}
	return out
}
