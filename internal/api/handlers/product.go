package handlers

import (
	"net/http"
	"strconv"

	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct handles POST /products
// @Summary Create a product
// @Description Add a product to the current store, subject to the plan's product ceiling
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse "Product created"
// @Failure 403 {object} ErrorResponse "Product limit reached or insufficient role"
// @Failure 409 {object} ErrorResponse "Slug already used in this store"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), store, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.ProductResponse "Product"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), store.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /products
// @Summary List the store's products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProductListResponse "Products"
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.productService.List(c.Request.Context(), store.ID, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProduct handles PUT /products/:id
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.UpdateProductRequest true "Product changes"
// @Success 200 {object} service.ProductResponse "Updated product"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), store.ID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if err := h.productService.Delete(c.Request.Context(), store.ID, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
