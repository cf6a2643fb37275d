package handlers

import (
	"net/http"

	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BrandHandler handles HTTP requests for brand operations
type BrandHandler struct {
	brandService service.BrandServiceInterface
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandService service.BrandServiceInterface) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// CreateBrand handles POST /brands
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body service.BrandRequest true "Brand data"
// @Success 201 {object} service.BrandResponse "Brand created"
// @Security BearerAuth
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	var req service.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), store.ID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// ListBrands handles GET /brands
// @Summary List the store's brands
// @Tags brands
// @Produce json
// @Success 200 {array} service.BrandResponse "Brands"
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	brands, err := h.brandService.List(c.Request.Context(), store.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// UpdateBrand handles PUT /brands/:id
// @Summary Rename a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID (UUID)"
// @Param brand body service.BrandRequest true "Brand data"
// @Success 200 {object} service.BrandResponse "Updated brand"
// @Failure 404 {object} ErrorResponse "Brand not found"
// @Security BearerAuth
// @Router /brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand ID"})
		return
	}

	var req service.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.brandService.Update(c.Request.Context(), store.ID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// DeleteBrand handles DELETE /brands/:id
// @Summary Delete a brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID (UUID)"
// @Success 204 "Brand deleted"
// @Failure 404 {object} ErrorResponse "Brand not found"
// @Security BearerAuth
// @Router /brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand ID"})
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), store.ID, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
