package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/request"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
	"github.com/mercibizhub/bizhub-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		UserID:   *userID,
		Name:     req.Name,
		Category: req.Category,
		Price:    request.ToKobo(req.Price),
		GenPrice: request.ToKoboPtr(req.GenPrice),
		Stock:    req.Stock,
		Favorite: req.Favorite,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles fetching a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// List handles listing products. Favorites come first.
func (h *ProductHandler) List(c *gin.Context) {
	params := &repository.ProductFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
	}

	if raw := c.Query("category"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			if cat := enum.ProductCategory(v); cat.Valid() {
				params.Category = &cat
			}
		}
	}
	if c.Query("favorites") == "true" {
		params.FavoritesOnly = true
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Update handles a partial product update
func (h *ProductHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		UserID:   *userID,
		Name:     req.Name,
		Category: req.Category,
		Price:    request.ToKoboPtr(req.Price),
		GenPrice: request.ToKoboPtr(req.GenPrice),
		Stock:    req.Stock,
		Favorite: req.Favorite,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// DeleteMany handles deleting a batch of products
func (h *ProductHandler) DeleteMany(c *gin.Context) {
	var req request.DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.productService.DeleteProducts(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products deleted successfully", nil)
}

// paginationParams binds the page window from the query string
func paginationParams(c *gin.Context) *pagination.Params {
	params := &pagination.Params{}
	if err := c.ShouldBindQuery(params); err != nil {
		return &pagination.Params{}
	}
	return params
}
