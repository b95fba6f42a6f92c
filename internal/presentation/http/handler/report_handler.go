package handler

import (
	"github.com/cratetracker/cratetracker-api/internal/application/service"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the summary report
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}
