package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/request"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService   *service.SaleService
	exportService *service.ExportService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, exportService *service.ExportService) *SaleHandler {
	return &SaleHandler{
		saleService:   saleService,
		exportService: exportService,
	}
}

// Create handles creating a sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		UserID:         *userID,
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		CustomUnitCost: request.ToKoboPtr(req.UnitCost),
		Paid:           request.ToKobo(req.Paid),
		PaymentMethod:  req.PaymentMethod,
		CustomerName:   req.CustomerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles fetching a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
		Status:     statusParam(c),
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Update handles a partial sale update
func (h *SaleHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), id, &service.UpdateSaleInput{
		UserID:        *userID,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		UnitCost:      request.ToKoboPtr(req.UnitCost),
		Paid:          request.ToKoboPtr(req.Paid),
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles deleting a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

// DeleteMany handles deleting a batch of sales
func (h *SaleHandler) DeleteMany(c *gin.Context) {
	var req request.DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.saleService.DeleteSales(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales deleted successfully", nil)
}

// Export streams the matching sales as an xlsx download
func (h *SaleHandler) Export(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Search: c.Query("search"),
		Status: statusParam(c),
	}

	out, err := h.exportService.ExportSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.FileName+`"`)
	c.Data(200, out.ContentType, out.Content)
}
