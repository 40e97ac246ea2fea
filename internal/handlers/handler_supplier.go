package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

// supplierHandler handles supplier directory requests.
type supplierHandler struct {
	supplierService portssvc.SupplierDirectorySvc
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(supplierService portssvc.SupplierDirectorySvc) *supplierHandler {
	return &supplierHandler{
		supplierService: supplierService,
	}
}

// registerSupplierRoutes registers supplier directory routes.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierDirectorySvc) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
	}
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves all supplier directory records ordered by company name.
// @Tags suppliers
// @Produce  json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}
