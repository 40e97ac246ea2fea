package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

// orderQueryHandler handles search and summary requests over purchase orders.
type orderQueryHandler struct {
	queryService portssvc.OrderQuerySvc
}

// newOrderQueryHandler creates a new orderQueryHandler.
func newOrderQueryHandler(queryService portssvc.OrderQuerySvc) *orderQueryHandler {
	return &orderQueryHandler{
		queryService: queryService,
	}
}

// registerOrderQueryRoutes registers the search and summary routes under the
// purchase-orders group.
func registerOrderQueryRoutes(rg *gin.RouterGroup, queryService portssvc.OrderQuerySvc) {
	h := newOrderQueryHandler(queryService)

	rg.GET("/search", h.searchOrders)
	rg.GET("/status-counts", h.statusCounts)
}

// searchOrders godoc
// @Summary Search purchase orders
// @Description Matches the keyword against PO numbers, supplier company names and exact status values. totalOrders always reflects the whole table, independent of the keyword.
// @Tags purchase-orders
// @Produce  json
// @Param   keyword query string false "Search keyword"
// @Param   page query int false "Page number (default 1)"
// @Param   per_page query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.SearchOrdersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/search [get]
func (h *orderQueryHandler) searchOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query struct {
		Keyword string `form:"keyword"`
		Page    int    `form:"page"`
		PerPage int    `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for SearchOrders", slog.String("error", err.Error()))
		respondWithError(c, bindingViolations(err))
		return
	}

	resp, err := h.queryService.Search(c.Request.Context(), dto.SearchOrdersParams{
		Keyword: query.Keyword,
		Page:    query.Page,
		PerPage: query.PerPage,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// statusCounts godoc
// @Summary Purchase order counts per status
// @Description Returns one count per status holding at least one order, plus the overall order total.
// @Tags purchase-orders
// @Produce  json
// @Success 200 {object} dto.StatusSummaryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/status-counts [get]
func (h *orderQueryHandler) statusCounts(c *gin.Context) {
	resp, err := h.queryService.StatusSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
