package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/tenancy"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService handles the store-scoped product catalog.
type ProductService struct {
	products  repository.ProductRepositoryInterface
	limits    *tenancy.Limits
	validator *validator.Validate
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// NewProductService creates a new ProductService
func NewProductService(products repository.ProductRepositoryInterface, limits *tenancy.Limits, validator *validator.Validate) *ProductService {
	return &ProductService{
		products:  products,
		limits:    limits,
		validator: validator,
	}
}

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Slug        string     `json:"slug,omitempty" validate:"omitempty,max=220"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price" validate:"gte=0"`
	Currency    string     `json:"currency,omitempty" validate:"omitempty,len=3"`
	Stock       int        `json:"stock" validate:"gte=0"`
	BrandID     *uuid.UUID `json:"brand_id,omitempty"`
}

// UpdateProductRequest represents the product update payload
type UpdateProductRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool      `json:"is_active,omitempty"`
	BrandID     *uuid.UUID `json:"brand_id,omitempty"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Stock       int        `json:"stock"`
	IsActive    bool       `json:"is_active"`
	BrandID     *uuid.UUID `json:"brand_id,omitempty"`
}

// ProductListResponse represents a paginated product list
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product name.
func Slugify(name string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Create adds a product to the store, enforcing the plan's product ceiling
// and per-store slug uniqueness.
func (s *ProductService) Create(ctx context.Context, store *models.Store, req *CreateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.limits.Allow(store, tenancy.LimitProducts); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if _, err := s.products.GetBySlug(store.ID, slug); err == nil {
		return nil, apperrors.ErrProductExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}

	product := &models.Product{
		StoreID:     store.ID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		Currency:    strings.ToUpper(currency),
		Stock:       req.Stock,
		IsActive:    true,
	}
	if err := s.products.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	response := s.toResponse(product)
	return &response, nil
}

// GetByID returns one product scoped to the store.
func (s *ProductService) GetByID(ctx context.Context, storeID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	response := s.toResponse(product)
	return &response, nil
}

// List returns the store's products with pagination.
func (s *ProductService) List(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	products, total, err := s.products.ListByStore(storeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = s.toResponse(&p)
	}
	return &ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies partial changes to a product.
func (s *ProductService) Update(ctx context.Context, storeID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.BrandID != nil {
		product.BrandID = req.BrandID
	}

	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	response := s.toResponse(product)
	return &response, nil
}

// Delete removes a product from the store.
func (s *ProductService) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	if _, err := s.products.GetByID(storeID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("failed to get product: %w", err)
	}
	if err := s.products.Delete(storeID, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// toResponse converts a Product model to API response
func (s *ProductService) toResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       product.Price,
		Currency:    product.Currency,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		BrandID:     product.BrandID,
	}
}
