package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/middleware"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type PaymentHandler struct {
	paymentService      *services.PaymentService
	amortizationService *services.AmortizationService
	reportService       *services.ReportService
}

func NewPaymentHandler(
	paymentService *services.PaymentService,
	amortizationService *services.AmortizationService,
	reportService *services.ReportService,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService:      paymentService,
		amortizationService: amortizationService,
		reportService:       reportService,
	}
}

// PreviewPaymentRequest matches a payment against either the stored schedule
// of contract_id or a schedule computed from explicit terms.
type PreviewPaymentRequest struct {
	ContractID      *uint             `json:"contract_id"`
	Schedule        *CalculateRequest `json:"schedule"`
	PaymentAmount   *decimal.Decimal  `json:"payment_amount" binding:"required"`
	BookingDate     string            `json:"booking_date"`
	SelectedPeriods []string          `json:"selected_periods"`
}

// ExecutePaymentRequest posts a payment against a contract
type ExecutePaymentRequest struct {
	PaymentAmount   *decimal.Decimal `json:"payment_amount" binding:"required"`
	Currency        string           `json:"currency" binding:"omitempty,len=3"`
	BookingDate     string           `json:"booking_date"`
	SelectedPeriods []string         `json:"selected_periods"`
}

// @Summary Preview Payment
// @Description Allocate a payment over selected periods and return the balanced journal lines it would post
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body PreviewPaymentRequest true "Payment"
// @Success 200 {object} models.PaymentPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/preview [post]
func (h *PaymentHandler) Preview(c *gin.Context) {
	var req PreviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		respondError(c, err)
		return
	}

	var schedule *accounting.Schedule
	switch {
	case req.ContractID != nil:
		_, schedule, _, err = h.amortizationService.PersistedSchedule(c.Request.Context(), *req.ContractID)
	case req.Schedule != nil:
		in, inErr := req.Schedule.input()
		if inErr != nil {
			respondError(c, inErr)
			return
		}
		schedule, err = h.amortizationService.Calculate(in)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	in := services.PreviewInput{
		Schedule:        schedule,
		PaymentAmount:   *req.PaymentAmount,
		SelectedPeriods: req.SelectedPeriods,
	}
	if bookingDate != nil {
		in.BookingDate = *bookingDate
	}

	preview, err := h.paymentService.Preview(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPaymentPreviewResponse(preview.Allocation, preview.Lines))
}

// @Summary Execute Payment
// @Description Post a payment against the stored schedule of a contract, settling the selected periods
// @Tags Payments
// @Accept json
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param request body ExecutePaymentRequest true "Payment"
// @Param X-Operator-ID header string false "Operator"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{contract_id}/payments [post]
func (h *PaymentHandler) Execute(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	var req ExecutePaymentRequest
	if err := BindNestedOrFlat(c, "payment", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido: " + err.Error()})
		return
	}
	if req.PaymentAmount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_amount es requerido"})
		return
	}
	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.paymentService.Execute(c.Request.Context(), contractID, services.ExecuteInput{
		PaymentAmount:   *req.PaymentAmount,
		Currency:        req.Currency,
		BookingDate:     bookingDate,
		SelectedPeriods: req.SelectedPeriods,
	}, middleware.GetOperator(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.reportService.Invalidate()

	entries := make([]models.AmortizationEntryResponse, len(result.Entries))
	for i := range result.Entries {
		entries[i] = result.Entries[i].ToResponse()
	}
	c.JSON(http.StatusCreated, gin.H{
		"payment":              result.Payment.ToResponse(),
		"journal_entries":      journalResponses(result.Journal),
		"amortization_entries": entries,
	})
}

// @Summary List Contract Payments
// @Description List the payments of a contract
// @Tags Payments
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/payments [get]
func (h *PaymentHandler) IndexByContract(c *gin.Context) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	payments, err := h.paymentService.FindByContract(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, payments[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"payments": responses})
}

// @Summary Get Payment
// @Description Get a payment by ID
// @Tags Payments
// @Produce json
// @Param payment_id path int true "Payment ID"
// @Success 200 {object} models.PaymentResponse
// @Failure 404 {object} map[string]string
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "payment_id")
	if !ok {
		return
	}
	payment, err := h.paymentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment.ToResponse()})
}

// @Summary Cancel Payment
// @Description Cancel a payment. Confirmed payments get a reversing journal batch.
// @Tags Payments
// @Produce json
// @Param payment_id path int true "Payment ID"
// @Param X-Operator-ID header string false "Operator"
// @Success 200 {object} models.PaymentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/{payment_id}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "payment_id")
	if !ok {
		return
	}
	payment, err := h.paymentService.Cancel(c.Request.Context(), id, middleware.GetOperator(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.reportService.Invalidate()
	c.JSON(http.StatusOK, gin.H{"payment": payment.ToResponse()})
}
