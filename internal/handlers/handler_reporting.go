package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles report generation requests.
type reportingHandler struct {
	reportingService portssvc.OrderReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.OrderReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// registerReportingRoutes registers report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.OrderReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/purchase-orders", h.supplierDateReport)
	}
}

// supplierDateReport godoc
// @Summary Purchase orders of a supplier within a date range
// @Description Lists one supplier's purchase orders whose order date falls within the inclusive range, most recent first, with lines attached.
// @Tags reports
// @Produce  json
// @Param   supplier_id query string true "Supplier ID"
// @Param   start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param   end_date query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.SupplierDateReportResponse
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/purchase-orders [get]
func (h *reportingHandler) supplierDateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	supplierID := c.Query("supplier_id")
	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")

	violations := &apperrors.ValidationErrors{}
	if supplierID == "" {
		violations.Add("supplier_id", "is required")
	}

	var startDate, endDate time.Time
	var err error
	if startRaw == "" {
		violations.Add("start_date", "is required")
	} else if startDate, err = time.Parse(reportDateLayout, startRaw); err != nil {
		violations.Addf("start_date", "%q is not a valid calendar date (expected YYYY-MM-DD)", startRaw)
	}
	if endRaw == "" {
		violations.Add("end_date", "is required")
	} else if endDate, err = time.Parse(reportDateLayout, endRaw); err != nil {
		violations.Addf("end_date", "%q is not a valid calendar date (expected YYYY-MM-DD)", endRaw)
	}

	if violations.HasViolations() {
		logger.Warn("Invalid report filter", slog.Int("violation_count", len(violations.Violations)))
		respondWithError(c, violations)
		return
	}

	resp, err := h.reportingService.ReportBySupplierAndDate(c.Request.Context(), dto.SupplierDateReportParams{
		SupplierID: supplierID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
