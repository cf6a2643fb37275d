package repository

import (
	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreMemberRepository handles database operations for store memberships
type StoreMemberRepository struct {
	db *gorm.DB
}

// NewStoreMemberRepository creates a new store member repository
func NewStoreMemberRepository(db *gorm.DB) *StoreMemberRepository {
	return &StoreMemberRepository{db: db}
}

// Create creates a new membership row
func (r *StoreMemberRepository) Create(member *models.StoreMember) error {
	return r.db.Create(member).Error
}

// Get retrieves the membership for a (user, store) pair
func (r *StoreMemberRepository) Get(userID, storeID uuid.UUID) (*models.StoreMember, error) {
	var member models.StoreMember
	err := r.db.First(&member, "user_id = ? AND store_id = ?", userID, storeID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByStore retrieves members of a store with pagination
func (r *StoreMemberRepository) ListByStore(storeID uuid.UUID, limit, offset int) ([]models.StoreMember, int64, error) {
	var members []models.StoreMember
	var total int64

	if err := r.db.Model(&models.StoreMember{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("store_id = ?", storeID).
		Limit(limit).Offset(offset).Order("created_at").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListByUser retrieves all memberships held by a user
func (r *StoreMemberRepository) ListByUser(userID uuid.UUID) ([]models.StoreMember, error) {
	var members []models.StoreMember
	err := r.db.Preload("Store").Where("user_id = ?", userID).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes the membership for a (user, store) pair
func (r *StoreMemberRepository) Delete(userID, storeID uuid.UUID) error {
	return r.db.Delete(&models.StoreMember{}, "user_id = ? AND store_id = ?", userID, storeID).Error
}
