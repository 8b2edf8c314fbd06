package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/request"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	exportService  *service.ExportService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, exportService *service.ExportService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

// Create handles creating an invoice from a basket of lines
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.InvoiceLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.InvoiceLineInput{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			CustomUnitCost: request.ToKoboPtr(l.UnitCost),
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		UserID:        *userID,
		CustomerName:  req.CustomerName,
		Paid:          request.ToKobo(req.Paid),
		PaymentMethod: req.PaymentMethod,
		Lines:         lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles fetching a single invoice with its lines
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
		Status:     statusParam(c),
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Update handles a partial invoice update
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, &service.UpdateInvoiceInput{
		UserID:        *userID,
		CustomerName:  req.CustomerName,
		TotalPaid:     request.ToKoboPtr(req.Paid),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// DeleteMany handles deleting a batch of invoices
func (h *InvoiceHandler) DeleteMany(c *gin.Context) {
	var req request.DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.invoiceService.DeleteInvoices(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices deleted successfully", nil)
}

// Export streams the matching invoices as an xlsx download
func (h *InvoiceHandler) Export(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Search: c.Query("search"),
		Status: statusParam(c),
	}

	out, err := h.exportService.ExportInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.FileName+`"`)
	c.Data(200, out.ContentType, out.Content)
}
