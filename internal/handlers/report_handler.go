package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	exportService *services.ExportService
}

func NewReportHandler(reportService *services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// @Summary Dashboard
// @Description Active contracts, current month amortization, remaining payable and the period trend
// @Tags Reports
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Vendor Distribution
// @Description Contracted amount per vendor and its share of the total
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /reports/vendors [get]
func (h *ReportHandler) Vendors(c *gin.Context) {
	shares, err := h.reportService.VendorDistribution(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": shares})
}

// @Summary Schedule XLSX
// @Description Download the amortization schedule of a contract as a spreadsheet
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param contract_id path int true "Contract ID"
// @Success 200 {file} file "schedule.xlsx"
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/exports/schedule.xlsx [get]
func (h *ReportHandler) ScheduleXLSX(c *gin.Context) {
	h.export(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.exportService.ScheduleXLSX)
}

// @Summary Journal PDF
// @Description Download the journal of a contract as PDF
// @Tags Exports
// @Produce application/pdf
// @Param contract_id path int true "Contract ID"
// @Success 200 {file} file "journal.pdf"
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/exports/journal.pdf [get]
func (h *ReportHandler) JournalPDF(c *gin.Context) {
	h.export(c, "application/pdf", h.exportService.JournalPDF)
}

// @Summary Journal CSV
// @Description Download the journal of a contract as CSV
// @Tags Exports
// @Produce text/csv
// @Param contract_id path int true "Contract ID"
// @Success 200 {file} file "journal.csv"
// @Failure 404 {object} map[string]string
// @Router /contracts/{contract_id}/exports/journal.csv [get]
func (h *ReportHandler) JournalCSV(c *gin.Context) {
	h.export(c, "text/csv", h.exportService.JournalCSV)
}

type exportFunc func(ctx context.Context, contractID uint) ([]byte, string, error)

func (h *ReportHandler) export(c *gin.Context, contentType string, render exportFunc) {
	contractID, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	data, filename, err := render(c.Request.Context(), contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
