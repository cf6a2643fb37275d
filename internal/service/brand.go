package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandService handles store-scoped brands.
type BrandService struct {
	brands    repository.BrandRepositoryInterface
	validator *validator.Validate
}

// Ensure BrandService implements BrandServiceInterface
var _ BrandServiceInterface = (*BrandService)(nil)

// NewBrandService creates a new BrandService
func NewBrandService(brands repository.BrandRepositoryInterface, validator *validator.Validate) *BrandService {
	return &BrandService{brands: brands, validator: validator}
}

// BrandRequest represents the brand create/update payload
type BrandRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Create adds a brand to the store.
func (s *BrandService) Create(ctx context.Context, storeID uuid.UUID, req *BrandRequest) (*BrandResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand := &models.Brand{StoreID: storeID, Name: req.Name}
	if err := s.brands.Create(brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	response := s.toResponse(brand)
	return &response, nil
}

// List returns all brands in the store.
func (s *BrandService) List(ctx context.Context, storeID uuid.UUID) ([]BrandResponse, error) {
	brands, err := s.brands.ListByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	responses := make([]BrandResponse, len(brands))
	for i, b := range brands {
		responses[i] = s.toResponse(&b)
	}
	return responses, nil
}

// Update renames a brand.
func (s *BrandService) Update(ctx context.Context, storeID, id uuid.UUID, req *BrandRequest) (*BrandResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand, err := s.brands.GetByID(storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	brand.Name = req.Name
	if err := s.brands.Update(brand); err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	response := s.toResponse(brand)
	return &response, nil
}

// Delete removes a brand. Products referencing it fall back to no brand.
func (s *BrandService) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	if _, err := s.brands.GetByID(storeID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBrandNotFound
		}
		return fmt.Errorf("failed to get brand: %w", err)
	}
	if err := s.brands.Delete(storeID, id); err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

// toResponse converts a Brand model to API response
func (s *BrandService) toResponse(brand *models.Brand) BrandResponse {
	return BrandResponse{ID: brand.ID, Name: brand.Name}
}
