package repository

import (
	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandRepository handles database operations for brands
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// GetByID retrieves a brand by ID within a store
func (r *BrandRepository) GetByID(storeID, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "store_id = ? AND id = ?", storeID, id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// ListByStore retrieves all brands in a store
func (r *BrandRepository) ListByStore(storeID uuid.UUID) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Where("store_id = ?", storeID).Order("name").Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// Update updates a brand
func (r *BrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete deletes a brand within a store
func (r *BrandRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Delete(&models.Brand{}, "store_id = ? AND id = ?", storeID, id).Error
}
