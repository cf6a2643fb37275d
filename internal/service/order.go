package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/tenancy"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService handles store-scoped orders. Line item prices are captured
// from the product catalog at creation time; the client never supplies
// amounts.
type OrderService struct {
	orders    repository.OrderRepositoryInterface
	products  repository.ProductRepositoryInterface
	limits    *tenancy.Limits
	validator *validator.Validate
}

// Ensure OrderService implements OrderServiceInterface
var _ OrderServiceInterface = (*OrderService)(nil)

// NewOrderService creates a new OrderService
func NewOrderService(
	orders repository.OrderRepositoryInterface,
	products repository.ProductRepositoryInterface,
	limits *tenancy.Limits,
	validator *validator.Validate,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		limits:    limits,
		validator: validator,
	}
}

// OrderItemRequest represents one requested line in an order
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents the order creation payload
type CreateOrderRequest struct {
	Email string             `json:"email" validate:"required,email"`
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse represents a line item in API responses
type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Total     float64   `json:"total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Currency  string              `json:"currency"`
	Status    models.OrderStatus  `json:"status"`
	Subtotal  float64             `json:"subtotal"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// OrderListResponse represents a paginated order list
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create places an order, pricing each line from the live catalog and
// enforcing the plan's monthly order ceiling. A nil user means guest
// checkout.
func (s *OrderService) Create(ctx context.Context, store *models.Store, user *models.User, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Items) == 0 {
		return nil, apperrors.ErrEmptyOrder
	}
	if err := s.limits.Allow(store, tenancy.LimitOrders); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ProductID
	}
	catalog, err := s.products.GetByIDs(store.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	var subtotal float64
	currency := ""
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, ok := byID[line.ProductID]
		if !ok || !product.IsActive {
			return nil, apperrors.ErrProductNotFound
		}
		if currency == "" {
			currency = product.Currency
		}
		lineTotal := product.Price * float64(line.Quantity)
		subtotal += lineTotal
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Total:     lineTotal,
		})
	}

	order := &models.Order{
		StoreID:  store.ID,
		Email:    strings.ToLower(req.Email),
		Currency: currency,
		Status:   models.OrderStatusPending,
		Subtotal: subtotal,
		Total:    subtotal,
	}
	if user != nil {
		order.UserID = &user.ID
	}

	if err := s.orders.CreateWithItems(order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	response := s.toResponse(order)
	return &response, nil
}

// GetByID returns one order scoped to the store.
func (s *OrderService) GetByID(ctx context.Context, storeID, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	response := s.toResponse(order)
	return &response, nil
}

// List returns the store's orders with pagination.
func (s *OrderService) List(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	orders, total, err := s.orders.ListByStore(storeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = s.toResponse(&o)
	}
	return &OrderListResponse{
		Orders:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Cancel moves a pending order to cancelled. Paid orders stay paid.
func (s *OrderService) Cancel(ctx context.Context, storeID, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != models.OrderStatusPending {
		return nil, &apperrors.BadRequestError{Message: fmt.Sprintf("cannot cancel a %s order", order.Status)}
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	response := s.toResponse(order)
	return &response, nil
}

// MarkPaid transitions an order to paid. Called by the payment service
// after the gateway confirms the charge.
func (s *OrderService) MarkPaid(ctx context.Context, storeID, id uuid.UUID) error {
	order, err := s.orders.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status == models.OrderStatusPaid {
		return nil
	}
	order.Status = models.OrderStatusPaid
	if err := s.orders.Update(order); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// toResponse converts an Order model to API response
func (s *OrderService) toResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	return OrderResponse{
		ID:        order.ID,
		Email:     order.Email,
		Currency:  order.Currency,
		Status:    order.Status,
		Subtotal:  order.Subtotal,
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}
