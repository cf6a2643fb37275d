package handlers

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/auth"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderService service.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder handles POST /orders
// @Summary Place an order
// @Description Create an order priced from the live catalog; guest checkout is allowed
// @Tags orders
// @Accept json
// @Produce json
// @Param order body service.CreateOrderRequest true "Order data"
// @Success 201 {object} service.OrderResponse "Order created"
// @Failure 403 {object} ErrorResponse "Monthly order limit reached"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Guest checkout: the user is attached only when authenticated.
	user, _ := auth.CurrentUser(c)

	order, err := h.orderService.Create(c.Request.Context(), store, user, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} service.OrderResponse "Order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), store.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /orders
// @Summary List the store's orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrderListResponse "Orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.orderService.List(c.Request.Context(), store.ID, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelOrder handles POST /orders/:id/cancel
// @Summary Cancel a pending order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} service.OrderResponse "Cancelled order"
// @Failure 400 {object} ErrorResponse "Order is not pending"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), store.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
