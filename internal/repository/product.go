package repository

import (
	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products. Every query
// is scoped by store id; there is no cross-tenant read path.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by ID within a store
func (r *ProductRepository) GetByID(storeID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "store_id = ? AND id = ?", storeID, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySlug retrieves a product by slug within a store
func (r *ProductRepository) GetBySlug(storeID uuid.UUID, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "store_id = ? AND slug = ?", storeID, slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs retrieves the products matching ids within a store
func (r *ProductRepository) GetByIDs(storeID uuid.UUID, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("store_id = ? AND id IN ?", storeID, ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListByStore retrieves a store's products with pagination
func (r *ProductRepository) ListByStore(storeID uuid.UUID, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := r.db.Model(&models.Product{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("store_id = ?", storeID).
		Limit(limit).Offset(offset).Order("created_at").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// CountByStore returns the number of products in a store
func (r *ProductRepository) CountByStore(storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("store_id = ?", storeID).Count(&count).Error
	return count, err
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete deletes a product within a store
func (r *ProductRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, "store_id = ? AND id = ?", storeID, id).Error
}
