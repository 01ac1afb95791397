package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/middleware"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type ContractHandler struct {
	contractService *services.ContractService
	reportService   *services.ReportService
}

func NewContractHandler(contractService *services.ContractService, reportService *services.ReportService) *ContractHandler {
	return &ContractHandler{contractService: contractService, reportService: reportService}
}

// CreateContractRequest is accepted flat or nested under "contract"
type CreateContractRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount" binding:"required"`
	Currency    string           `json:"currency" binding:"omitempty,len=3"`
	StartDate   string           `json:"start_date" binding:"required"`
	EndDate     string           `json:"end_date" binding:"required"`
	VendorName  string           `json:"vendor_name" binding:"required,max=255"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Description *string          `json:"description"`
}

// UpdateContractRequest changes only the fields present in the body
type UpdateContractRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	VendorName  *string          `json:"vendor_name" binding:"omitempty,max=255"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Description *string          `json:"description"`
}

// @Summary List Contracts
// @Description List contracts, optionally filtered by vendor name
// @Tags Contracts
// @Produce json
// @Param vendor query string false "Vendor name contains"
// @Success 200 {object} map[string]interface{}
// @Router /contracts [get]
func (h *ContractHandler) Index(c *gin.Context) {
	contracts, err := h.contractService.List(c.Request.Context(), c.Query("vendor"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		responses = append(responses, contract.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"contracts": responses})
}

// @Summary Get Contract
// @Description Get a contract with its amortization entries
// @Tags Contracts
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} models.ContractResponse
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id} [get]
func (h *ContractHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	contract, err := h.contractService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract.ToResponse()})
}

// @Summary Create Contract
// @Description Create a contract and initialise its amortization schedule
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body CreateContractRequest true "Contract data"
// @Param X-Operator-ID header string false "Operator"
// @Success 201 {object} models.ContractResponse
// @Failure 400 {object} map[string]string
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := BindNestedOrFlat(c, "contract", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido: " + err.Error()})
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.ContractInput{
		TotalAmount: *req.TotalAmount,
		Currency:    req.Currency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		VendorName:  req.VendorName,
		Description: req.Description,
	}
	if req.TaxRate != nil {
		in.TaxRate = *req.TaxRate
	}

	contract, err := h.contractService.Create(c.Request.Context(), in, middleware.GetOperator(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.reportService.Invalidate()
	c.JSON(http.StatusCreated, gin.H{"contract": contract.ToResponse()})
}

// @Summary Update Contract
// @Description Update a contract. Changing amount or dates rebuilds the schedule and is refused once payments or accruals exist.
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param request body UpdateContractRequest true "Fields to change"
// @Param X-Operator-ID header string false "Operator"
// @Success 200 {object} models.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{contract_id} [patch]
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	var req UpdateContractRequest
	if err := BindNestedOrFlat(c, "contract", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido: " + err.Error()})
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), id, services.ContractUpdate{
		TotalAmount: req.TotalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		VendorName:  req.VendorName,
		TaxRate:     req.TaxRate,
		Description: req.Description,
	}, middleware.GetOperator(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.reportService.Invalidate()
	c.JSON(http.StatusOK, gin.H{"contract": contract.ToResponse()})
}
