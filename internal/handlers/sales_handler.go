package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/services"
)

// SalesHandler handles sales-related HTTP requests
type SalesHandler struct {
	salesService services.SalesService
	logger       *logrus.Logger
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService services.SalesService, logger *logrus.Logger) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// @Summary List sales
// @Description Get sales records newest first, optionally filtered by personnel and an inclusive date range
// @Tags sales
// @Produce json
// @Param personnelId query int false "Filter by personnel ID"
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.APIResponse{data=[]models.SalesRecord}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /sales [get]
func (h *SalesHandler) ListSales(c *gin.Context) {
	filters := &services.SalesFilters{}

	var ok bool
	if filters.PersonnelID, ok = optionalInt64Query(c, "personnelId"); !ok {
		return
	}
	if filters.From, ok = optionalDateQuery(c, "from"); !ok {
		return
	}
	if filters.To, ok = optionalDateQuery(c, "to"); !ok {
		return
	}

	sales, err := h.salesService.ListSales(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, h.logger, err, "list_sales")
		return
	}

	respondSuccess(c, http.StatusOK, sales, "")
}

// @Summary Get a sales record
// @Tags sales
// @Produce json
// @Param id path int true "Sales record ID"
// @Success 200 {object} models.APIResponse{data=models.SalesRecord}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /sales/{id} [get]
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err, "get_sale")
		return
	}

	respondSuccess(c, http.StatusOK, sale, "")
}

// @Summary Create a sales record
// @Description The report date cannot be in the future and the personnel must exist
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body services.SaleRequest true "Sales data"
// @Success 201 {object} models.APIResponse{data=models.SalesRecord}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /sales [post]
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req services.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, err.Error())
		return
	}

	sale, err := h.salesService.CreateSale(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err, "create_sale")
		return
	}

	c.Header("Location", "/api/sales/"+strconv.FormatInt(sale.ID, 10))
	respondSuccess(c, http.StatusCreated, sale, "")
}

// @Summary Delete a sales record
// @Tags sales
// @Produce json
// @Param id path int true "Sales record ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /sales/{id} [delete]
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.salesService.DeleteSale(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err, "delete_sale")
		return
	}

	respondSuccess(c, http.StatusOK, nil, fmt.Sprintf("Sales record with ID %d deleted successfully", id))
}
