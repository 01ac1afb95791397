package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/fintera-amortization/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobSvc,
	}
}

// Status returns the current worker status
// @Summary Get background job status
// @Description Get statistics about background jobs (active, completed, failed, queue length)
// @Tags Jobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	if h.jobService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "el procesador de tareas no está activo"})
		return
	}
	c.JSON(http.StatusOK, h.jobService.GetStatus())
}
