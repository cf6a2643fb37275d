package handlers

import (
	"net/http"

	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// InitPayment handles POST /payments/init
// @Summary Initialize a payment
// @Description Start a gateway charge for a pending order
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body service.InitPaymentRequest true "Order to pay"
// @Success 201 {object} service.PaymentResponse "Payment initialized"
// @Failure 400 {object} ErrorResponse "Order is not payable"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /payments/init [post]
func (h *PaymentHandler) InitPayment(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	var req service.InitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.paymentService.Init(c.Request.Context(), store, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerifyPayment handles GET /payments/verify/:reference
// @Summary Verify a payment
// @Description Ask the gateway for the final status of a reference; marks the order paid on success
// @Tags payments
// @Produce json
// @Param reference path string true "Provider reference"
// @Success 200 {object} service.PaymentResponse "Payment state"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Router /payments/verify/{reference} [get]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	store, ok := tenancy.CurrentStore(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
		return
	}

	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing payment reference"})
		return
	}

	resp, err := h.paymentService.Verify(c.Request.Context(), store, reference)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
