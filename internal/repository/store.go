package repository

import (
	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreRepository handles database operations for stores
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create creates a new store
func (r *StoreRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

// GetByID retrieves a store by ID
func (r *StoreRepository) GetByID(id uuid.UUID) (*models.Store, error) {
	var store models.Store
	err := r.db.First(&store, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByDomain retrieves a store by its exact domain
func (r *StoreRepository) GetByDomain(domain string) (*models.Store, error) {
	var store models.Store
	err := r.db.First(&store, "domain = ?", domain).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// GetBySubdomain retrieves a store by its subdomain
func (r *StoreRepository) GetBySubdomain(subdomain string) (*models.Store, error) {
	var store models.Store
	err := r.db.First(&store, "subdomain = ?", subdomain).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// GetAll retrieves all stores with pagination
func (r *StoreRepository) GetAll(limit, offset int) ([]models.Store, int64, error) {
	var stores []models.Store
	var total int64

	if err := r.db.Model(&models.Store{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at").Find(&stores).Error
	if err != nil {
		return nil, 0, err
	}

	return stores, total, nil
}

// Update updates a store
func (r *StoreRepository) Update(store *models.Store) error {
	return r.db.Save(store).Error
}
