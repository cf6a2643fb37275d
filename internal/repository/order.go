package repository

import (
	"time"

	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems creates an order and its line items in one transaction
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

// GetByID retrieves an order with its items within a store
func (r *OrderRepository) GetByID(storeID, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "store_id = ? AND id = ?", storeID, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByStore retrieves a store's orders with pagination
func (r *OrderRepository) ListByStore(storeID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.Model(&models.Order{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Items").
		Where("store_id = ?", storeID).
		Limit(limit).Offset(offset).Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// CountByStoreSince counts a store's orders created at or after since
func (r *OrderRepository) CountByStoreSince(storeID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("store_id = ? AND created_at >= ?", storeID, since).
		Count(&count).Error
	return count, err
}

// Update updates an order
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}
