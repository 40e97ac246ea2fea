package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	poService portssvc.PurchaseOrderSvcFacade
}

// newPurchaseOrderHandler creates a new purchaseOrderHandler.
func newPurchaseOrderHandler(poService portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{
		poService: poService,
	}
}

// registerPurchaseOrderRoutes registers routes for purchase order intake and lifecycle.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, poService portssvc.PurchaseOrderSvcFacade, queryService portssvc.OrderQuerySvc) {
	h := newPurchaseOrderHandler(poService)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)

		// Query routes live under the same group; see handler_order_query.go
		registerOrderQueryRoutes(orders, queryService)

		orders.GET("/:po_number", h.getPurchaseOrder)
		orders.GET("/:po_number/line-count", h.getLineCount)
		orders.PATCH("/:po_number/status", h.updateStatus)
		orders.DELETE("/:po_number", h.deletePurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Validates and atomically persists one purchase order header plus its lines. Every violated field is reported; nothing is written unless the whole submission passes.
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Purchase order submission"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]string "Duplicate PO number"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseOrder", slog.String("error", err.Error()))
		respondWithError(c, bindingViolations(err))
		return
	}

	order, err := h.poService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Description Retrieves a cursor-paginated list of purchase orders, most recent order date first.
// @Tags purchase-orders
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   next_token query string false "Cursor token from a previous page"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query struct {
		Limit     int     `form:"limit"`
		NextToken *string `form:"next_token"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListPurchaseOrders", slog.String("error", err.Error()))
		respondWithError(c, bindingViolations(err))
		return
	}

	resp, err := h.poService.ListPurchaseOrders(c.Request.Context(), dto.ListPurchaseOrdersParams{
		Limit:     query.Limit,
		NextToken: query.NextToken,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Description Retrieves a purchase order with its supplier name and lines attached.
// @Tags purchase-orders
// @Produce  json
// @Param   po_number path string true "Purchase order number"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/{po_number} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")

	order, err := h.poService.GetPurchaseOrder(c.Request.Context(), poNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// getLineCount godoc
// @Summary Count the lines of a purchase order
// @Description Returns how many lines the purchase order owns; 0 when it has none.
// @Tags purchase-orders
// @Produce  json
// @Param   po_number path string true "Purchase order number"
// @Success 200 {object} dto.LineCountResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/{po_number}/line-count [get]
func (h *purchaseOrderHandler) getLineCount(c *gin.Context) {
	poNumber := c.Param("po_number")

	count, err := h.poService.CountLines(c.Request.Context(), poNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LineCountResponse{PONumber: poNumber, LineCount: count})
}

// updateStatus godoc
// @Summary Update the status of a purchase order
// @Description Assigns a new workflow status to the purchase order. The value must be one of the enumerated statuses.
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   po_number path string true "Purchase order number"
// @Param   status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/{po_number}/status [patch]
func (h *purchaseOrderHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poNumber := c.Param("po_number")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		respondWithError(c, bindingViolations(err))
		return
	}

	order, err := h.poService.UpdateStatus(c.Request.Context(), poNumber, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// deletePurchaseOrder godoc
// @Summary Delete a purchase order
// @Description Removes a purchase order and all of its lines.
// @Tags purchase-orders
// @Param   po_number path string true "Purchase order number"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /purchase-orders/{po_number} [delete]
func (h *purchaseOrderHandler) deletePurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")

	if err := h.poService.DeletePurchaseOrder(c.Request.Context(), poNumber); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
