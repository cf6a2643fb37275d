package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/payment"
	"storefront-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService records gateway payment attempts against orders.
type PaymentService struct {
	payments  repository.PaymentRepositoryInterface
	orders    repository.OrderRepositoryInterface
	gateway   payment.Gateway
	orderSvc  OrderServiceInterface
	validator *validator.Validate
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	payments repository.PaymentRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	gateway payment.Gateway,
	orderSvc OrderServiceInterface,
	validator *validator.Validate,
) *PaymentService {
	return &PaymentService{
		payments:  payments,
		orders:    orders,
		gateway:   gateway,
		orderSvc:  orderSvc,
		validator: validator,
	}
}

// InitPaymentRequest represents the payment initialization payload
type InitPaymentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID               uuid.UUID            `json:"id"`
	OrderID          uuid.UUID            `json:"order_id"`
	Provider         string               `json:"provider"`
	Reference        string               `json:"reference"`
	Amount           float64              `json:"amount"`
	Currency         string               `json:"currency"`
	Status           models.PaymentStatus `json:"status"`
	AuthorizationURL string               `json:"authorization_url,omitempty"`
}

// Init starts a gateway charge for a pending order and records the attempt.
func (s *PaymentService) Init(ctx context.Context, store *models.Store, req *InitPaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.orders.GetByID(store.ID, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != models.OrderStatusPending {
		return nil, &apperrors.BadRequestError{Message: fmt.Sprintf("cannot pay a %s order", order.Status)}
	}
	if order.Total <= 0 {
		return nil, apperrors.ErrOrderTotalNotSet
	}

	result, err := s.gateway.Initialize(ctx, order.Email, order.Total, order.Currency)
	if err != nil {
		return nil, fmt.Errorf("gateway initialize failed: %w", err)
	}

	record := &models.Payment{
		StoreID:     store.ID,
		OrderID:     order.ID,
		Provider:    s.gateway.Name(),
		Reference:   result.Reference,
		Amount:      order.Total,
		Currency:    order.Currency,
		Status:      models.PaymentStatusInitialized,
		RawResponse: result.Raw,
	}
	if err := s.payments.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	response := s.toResponse(record)
	response.AuthorizationURL = result.AuthorizationURL
	return &response, nil
}

// Verify asks the gateway for the final status of a reference and, on
// success, marks the order paid. Verifying an already-settled payment is
// idempotent.
func (s *PaymentService) Verify(ctx context.Context, store *models.Store, reference string) (*PaymentResponse, error) {
	record, err := s.payments.GetByReference(store.ID, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if record.Status == models.PaymentStatusSuccess {
		response := s.toResponse(record)
		return &response, nil
	}

	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("gateway verify failed: %w", err)
	}

	if result.Succeeded {
		record.Status = models.PaymentStatusSuccess
	} else {
		record.Status = models.PaymentStatusFailed
	}
	record.RawResponse = result.Raw
	if err := s.payments.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	if result.Succeeded {
		if err := s.orderSvc.MarkPaid(ctx, store.ID, record.OrderID); err != nil {
			return nil, fmt.Errorf("failed to mark order paid: %w", err)
		}
	}

	response := s.toResponse(record)
	return &response, nil
}

// toResponse converts a Payment model to API response
func (s *PaymentService) toResponse(record *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        record.ID,
		OrderID:   record.OrderID,
		Provider:  record.Provider,
		Reference: record.Reference,
		Amount:    record.Amount,
		Currency:  record.Currency,
		Status:    record.Status,
	}
}
