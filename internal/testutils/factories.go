package testutils

import (
	"fmt"
	"time"

	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a verified test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    "Ada",
		LastName:     "Obi",
		Email:        fmt.Sprintf("ada.%s@example.com", id.String()[:8]),
		PasswordHash: HashPassword("password123"),
		IsVerified:   true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// Unverified creates a user that has not completed OTP verification
func (f *UserFactory) Unverified() *models.User {
	u := f.Create()
	u.IsVerified = false
	return u
}

// Superadmin creates a platform administrator
func (f *UserFactory) Superadmin() *models.User {
	u := f.Create()
	u.IsSuperadmin = true
	return u
}

// HashPassword bcrypt-hashes a password the same way the auth package does.
func HashPassword(password string) string {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	hash, _ := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	return string(hash)
}

// StoreFactory provides methods to create test Store data
type StoreFactory struct{}

// NewStoreFactory creates a new StoreFactory
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// Create creates an active test Store with default values
func (f *StoreFactory) Create() *models.Store {
	id := uuid.New()
	sub := "shop-" + id.String()[:8]
	return &models.Store{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test Store",
		Domain:    fmt.Sprintf("%s.example.com", sub),
		Subdomain: &sub,
		PlanTier:  models.PlanTierFree,
		IsActive:  true,
	}
}

// WithDomain sets a custom domain for the store
func (f *StoreFactory) WithDomain(domain string) *models.Store {
	s := f.Create()
	s.Domain = domain
	return s
}

// WithPlan sets the plan tier and its product ceiling
func (f *StoreFactory) WithPlan(tier models.PlanTier, maxProducts *int) *models.Store {
	s := f.Create()
	s.PlanTier = tier
	s.MaxProducts = maxProducts
	return s
}

// Inactive creates a deactivated store
func (f *StoreFactory) Inactive() *models.Store {
	s := f.Create()
	s.IsActive = false
	return s
}

// Suspended creates a suspended store with the given reason
func (f *StoreFactory) Suspended(reason string) *models.Store {
	s := f.Create()
	s.IsSuspended = true
	s.SuspensionReason = reason
	return s
}

// Expired creates a store whose subscription lapsed an hour ago
func (f *StoreFactory) Expired() *models.Store {
	s := f.Create()
	past := time.Now().Add(-time.Hour)
	s.SubscriptionEndsAt = &past
	return s
}

// StoreMemberFactory provides methods to create test StoreMember data
type StoreMemberFactory struct{}

// NewStoreMemberFactory creates a new StoreMemberFactory
func NewStoreMemberFactory() *StoreMemberFactory {
	return &StoreMemberFactory{}
}

// Create creates a membership linking the user and store with the role
func (f *StoreMemberFactory) Create(userID, storeID uuid.UUID, role models.StoreRole) *models.StoreMember {
	return &models.StoreMember{
		UserID:    userID,
		StoreID:   storeID,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates an active test Product for the store
func (f *ProductFactory) Create(storeID uuid.UUID) *models.Product {
	id := uuid.New()
	return &models.Product{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StoreID:  storeID,
		Name:     "Test Product",
		Slug:     "test-product-" + id.String()[:8],
		Price:    2500,
		Currency: "NGN",
		Stock:    10,
		IsActive: true,
	}
}

// WithPrice sets a custom price for the product
func (f *ProductFactory) WithPrice(storeID uuid.UUID, price float64) *models.Product {
	p := f.Create(storeID)
	p.Price = price
	return p
}

// Inactive creates a product hidden from the storefront
func (f *ProductFactory) Inactive(storeID uuid.UUID) *models.Product {
	p := f.Create(storeID)
	p.IsActive = false
	return p
}

// BrandFactory provides methods to create test Brand data
type BrandFactory struct{}

// NewBrandFactory creates a new BrandFactory
func NewBrandFactory() *BrandFactory {
	return &BrandFactory{}
}

// Create creates a test Brand for the store
func (f *BrandFactory) Create(storeID uuid.UUID) *models.Brand {
	return &models.Brand{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StoreID: storeID,
		Name:    "Test Brand",
	}
}

// OrderFactory provides methods to create test Order data
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory
func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// Create creates a pending guest order for the store
func (f *OrderFactory) Create(storeID uuid.UUID) *models.Order {
	id := uuid.New()
	return &models.Order{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StoreID:  storeID,
		Email:    fmt.Sprintf("buyer.%s@example.com", id.String()[:8]),
		Currency: "NGN",
		Status:   models.OrderStatusPending,
		Subtotal: 2500,
		Total:    2500,
	}
}

// WithUser attaches the order to a registered user
func (f *OrderFactory) WithUser(storeID, userID uuid.UUID) *models.Order {
	o := f.Create(storeID)
	o.UserID = &userID
	return o
}

// WithStatus sets a custom status for the order
func (f *OrderFactory) WithStatus(storeID uuid.UUID, status models.OrderStatus) *models.Order {
	o := f.Create(storeID)
	o.Status = status
	return o
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates an initialized payment for the order
func (f *PaymentFactory) Create(storeID, orderID uuid.UUID) *models.Payment {
	return &models.Payment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StoreID:   storeID,
		OrderID:   orderID,
		Provider:  "paystack",
		Reference: "ref-" + uuid.NewString(),
		Amount:    2500,
		Currency:  "NGN",
		Status:    models.PaymentStatusInitialized,
	}
}
