package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/services"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Amortization *AmortizationHandler
	Contract     *ContractHandler
	Payment      *PaymentHandler
	Journal      *JournalHandler
	Report       *ReportHandler
	Audit        *AuditHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		Amortization: NewAmortizationHandler(svcs.Amortization),
		Contract:     NewContractHandler(svcs.Contract, svcs.Report),
		Payment:      NewPaymentHandler(svcs.Payment, svcs.Amortization, svcs.Report),
		Journal:      NewJournalHandler(svcs.Journal),
		Report:       NewReportHandler(svcs.Report, svcs.Export),
		Audit:        NewAuditHandler(svcs.Audit),
		Job:          NewJobHandler(svcs.Job),
	}
}

// errorStatus maps service and calculation errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, accounting.ErrInvalidDateFormat),
		errors.Is(err, accounting.ErrInvalidRange),
		errors.Is(err, accounting.ErrInvalidAmount),
		errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrScheduleLocked),
		errors.Is(err, services.ErrAlreadyPosted):
		return http.StatusConflict
	case errors.Is(err, accounting.ErrPreconditionViolation):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...}. Unexpected errors are logged
// and reported to Sentry.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed", "path", c.FullPath(), "error", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// paramID reads a positive numeric path parameter, answering 400 otherwise
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts yyyy-MM-dd; empty input yields nil
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, accounting.ErrInvalidDateFormat
	}
	return &t, nil
}
