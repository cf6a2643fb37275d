package handlers

import (
	"net/http"

	"storefront-backend/internal/auth"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles HTTP requests for store operations
type StoreHandler struct {
	storeService service.StoreServiceInterface
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService service.StoreServiceInterface) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// CreateStore handles POST /stores
// @Summary Provision a new store
// @Description Create a store; the creator becomes its owner
// @Tags stores
// @Accept json
// @Produce json
// @Param store body service.CreateStoreRequest true "Store data"
// @Success 201 {object} service.StoreResponse "Store created"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 409 {object} ErrorResponse "Domain or subdomain taken"
// @Security BearerAuth
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	var req service.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), user, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

// GetCurrentStore handles GET /stores/current
// @Summary Get the store serving this request
// @Description Return the store resolved from the request domain
// @Tags stores
// @Produce json
// @Param X-Store-Domain header string false "Store domain override"
// @Success 200 {object} service.StoreResponse "Current store"
// @Failure 404 {object} ErrorResponse "Store not found"
// @Router /stores/current [get]
func (h *StoreHandler) GetCurrentStore(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrStoreNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, h.storeService.Current(store))
}

// ListMyStores handles GET /stores/mine
// @Summary List stores the current user belongs to
// @Tags stores
// @Produce json
// @Success 200 {array} service.StoreResponse "Stores"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /stores/mine [get]
func (h *StoreHandler) ListMyStores(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	stores, err := h.storeService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}
