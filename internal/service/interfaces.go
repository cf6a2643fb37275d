package service

import (
	"context"

	"storefront-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OTPServiceInterface defines the interface for OTP operations
type OTPServiceInterface interface {
	Issue(ctx context.Context, user *models.User) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
	VerifyByCode(ctx context.Context, code string) (bool, string, error)
	Status(ctx context.Context, email string) (*OTPStatus, error)
}

// AuthServiceInterface defines the interface for identity operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	VerifyOTP(ctx context.Context, code string) (*AuthResponse, error)
	ResendOTP(ctx context.Context, email string) error
	OTPStatus(ctx context.Context, email string) (*OTPStatus, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, user *models.User, req *ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, req *ResetPasswordConfirmRequest) error
	UpdateProfile(ctx context.Context, user *models.User, req *UpdateProfileRequest) (*UserResponse, error)
	TokensForUser(user *models.User) (*AuthResponse, error)
}

// OAuthServiceInterface defines the interface for Google OAuth operations
type OAuthServiceInterface interface {
	AuthURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*models.User, error)
}

// StoreServiceInterface defines the interface for store operations
type StoreServiceInterface interface {
	Create(ctx context.Context, creator *models.User, req *CreateStoreRequest) (*StoreResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*StoreResponse, error)
	Current(store *models.Store) StoreResponse
	ListForUser(ctx context.Context, userID uuid.UUID) ([]StoreResponse, error)
}

// ProductServiceInterface defines the interface for product operations
type ProductServiceInterface interface {
	Create(ctx context.Context, store *models.Store, req *CreateProductRequest) (*ProductResponse, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*ProductResponse, error)
	List(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*ProductListResponse, error)
	Update(ctx context.Context, storeID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

// BrandServiceInterface defines the interface for brand operations
type BrandServiceInterface interface {
	Create(ctx context.Context, storeID uuid.UUID, req *BrandRequest) (*BrandResponse, error)
	List(ctx context.Context, storeID uuid.UUID) ([]BrandResponse, error)
	Update(ctx context.Context, storeID, id uuid.UUID, req *BrandRequest) (*BrandResponse, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

// OrderServiceInterface defines the interface for order operations
type OrderServiceInterface interface {
	Create(ctx context.Context, store *models.Store, user *models.User, req *CreateOrderRequest) (*OrderResponse, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*OrderResponse, error)
	List(ctx context.Context, storeID uuid.UUID, page, pageSize int) (*OrderListResponse, error)
	Cancel(ctx context.Context, storeID, id uuid.UUID) (*OrderResponse, error)
	MarkPaid(ctx context.Context, storeID, id uuid.UUID) error
}

// PaymentServiceInterface defines the interface for payment operations
type PaymentServiceInterface interface {
	Init(ctx context.Context, store *models.Store, req *InitPaymentRequest) (*PaymentResponse, error)
	Verify(ctx context.Context, store *models.Store, reference string) (*PaymentResponse, error)
}
