package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type AmortizationHandler struct {
	amortizationService *services.AmortizationService
}

func NewAmortizationHandler(amortizationService *services.AmortizationService) *AmortizationHandler {
	return &AmortizationHandler{amortizationService: amortizationService}
}

// CalculateRequest carries explicit contract terms
type CalculateRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount" binding:"required"`
	Currency    string           `json:"currency" binding:"omitempty,len=3"`
	StartDate   string           `json:"start_date" binding:"required"`
	EndDate     string           `json:"end_date" binding:"required"`
	AsOf        string           `json:"as_of"`
}

func (r CalculateRequest) input() (services.CalculateInput, error) {
	asOf, err := parseDate(r.AsOf)
	if err != nil {
		return services.CalculateInput{}, err
	}
	return services.CalculateInput{
		TotalAmount: *r.TotalAmount,
		Currency:    r.Currency,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		AsOf:        asOf,
	}, nil
}

// @Summary Calculate Amortization
// @Description Compute a preview schedule for explicit terms. Entry ids are null.
// @Tags Amortization
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Contract terms"
// @Success 200 {object} models.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /amortization/calculate [post]
func (h *AmortizationHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.input()
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.amortizationService.Calculate(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewScheduleResponse(schedule))
}

// @Summary Contract Amortization
// @Description Recompute the schedule of a contract, merging stored ids, statuses and paid amounts by period
// @Tags Amortization
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param as_of query string false "As-of date (yyyy-MM-dd)"
// @Success 200 {object} models.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/amortization [get]
func (h *AmortizationHandler) ByContract(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	asOf, err := parseDate(c.Query("as_of"))
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := h.amortizationService.CalculateByContract(c.Request.Context(), id, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewScheduleResponse(schedule))
}
