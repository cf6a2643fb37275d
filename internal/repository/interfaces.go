package repository

import (
	"time"

	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StoreRepositoryInterface defines the interface for store repository operations
type StoreRepositoryInterface interface {
	Create(store *models.Store) error
	GetByID(id uuid.UUID) (*models.Store, error)
	GetByDomain(domain string) (*models.Store, error)
	GetBySubdomain(subdomain string) (*models.Store, error)
	GetAll(limit, offset int) ([]models.Store, int64, error)
	Update(store *models.Store) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// StoreMemberRepositoryInterface defines the interface for membership operations
type StoreMemberRepositoryInterface interface {
	Create(member *models.StoreMember) error
	Get(userID, storeID uuid.UUID) (*models.StoreMember, error)
	ListByStore(storeID uuid.UUID, limit, offset int) ([]models.StoreMember, int64, error)
	ListByUser(userID uuid.UUID) ([]models.StoreMember, error)
	Delete(userID, storeID uuid.UUID) error
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(storeID, id uuid.UUID) (*models.Product, error)
	GetBySlug(storeID uuid.UUID, slug string) (*models.Product, error)
	GetByIDs(storeID uuid.UUID, ids []uuid.UUID) ([]models.Product, error)
	ListByStore(storeID uuid.UUID, limit, offset int) ([]models.Product, int64, error)
	CountByStore(storeID uuid.UUID) (int64, error)
	Update(product *models.Product) error
	Delete(storeID, id uuid.UUID) error
}

// BrandRepositoryInterface defines the interface for brand repository operations
type BrandRepositoryInterface interface {
	Create(brand *models.Brand) error
	GetByID(storeID, id uuid.UUID) (*models.Brand, error)
	ListByStore(storeID uuid.UUID) ([]models.Brand, error)
	Update(brand *models.Brand) error
	Delete(storeID, id uuid.UUID) error
}

// OrderRepositoryInterface defines the interface for order repository operations
type OrderRepositoryInterface interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	GetByID(storeID, id uuid.UUID) (*models.Order, error)
	ListByStore(storeID uuid.UUID, limit, offset int) ([]models.Order, int64, error)
	CountByStoreSince(storeID uuid.UUID, since time.Time) (int64, error)
	Update(order *models.Order) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByReference(storeID uuid.UUID, reference string) (*models.Payment, error)
	Update(payment *models.Payment) error
}
