package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/plans"
	"storefront-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreService handles store provisioning and profile reads.
type StoreService struct {
	stores    repository.StoreRepositoryInterface
	members   repository.StoreMemberRepositoryInterface
	catalog   *plans.Catalog
	validator *validator.Validate
}

// Ensure StoreService implements StoreServiceInterface
var _ StoreServiceInterface = (*StoreService)(nil)

// NewStoreService creates a new StoreService
func NewStoreService(
	stores repository.StoreRepositoryInterface,
	members repository.StoreMemberRepositoryInterface,
	catalog *plans.Catalog,
	validator *validator.Validate,
) *StoreService {
	return &StoreService{
		stores:    stores,
		members:   members,
		catalog:   catalog,
		validator: validator,
	}
}

// CreateStoreRequest represents the provisioning payload
type CreateStoreRequest struct {
	Name      string  `json:"name" validate:"required,max=150"`
	Domain    string  `json:"domain" validate:"required,fqdn,max=255"`
	Subdomain *string `json:"subdomain,omitempty" validate:"omitempty,hostname,max=100"`
	PlanTier  string  `json:"plan_tier,omitempty" validate:"omitempty,oneof=free basic pro"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Domain             string          `json:"domain"`
	Subdomain          *string         `json:"subdomain,omitempty"`
	LogoURL            *string         `json:"logo_url,omitempty"`
	PlanTier           models.PlanTier `json:"plan_tier"`
	MaxProducts        *int            `json:"max_products,omitempty"`
	MaxOrdersPerMonth  *int            `json:"max_orders_per_month,omitempty"`
	IsActive           bool            `json:"is_active"`
	IsSuspended        bool            `json:"is_suspended"`
	SubscriptionEndsAt *time.Time      `json:"subscription_ends_at,omitempty"`
	Settings           json.RawMessage `json:"settings,omitempty"`
	Theme              json.RawMessage `json:"theme,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Create provisions a new store and makes the creator its owner. Plan tier
// ceilings come from the catalog unless the store carries explicit ones.
func (s *StoreService) Create(ctx context.Context, creator *models.User, req *CreateStoreRequest) (*StoreResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	domain := strings.ToLower(req.Domain)
	if _, err := s.stores.GetByDomain(domain); err == nil {
		return nil, apperrors.ErrStoreExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}

	var subdomain *string
	if req.Subdomain != nil {
		lowered := strings.ToLower(*req.Subdomain)
		if _, err := s.stores.GetBySubdomain(lowered); err == nil {
			return nil, apperrors.ErrSubdomainExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check subdomain: %w", err)
		}
		subdomain = &lowered
	}

	tier := models.PlanTierFree
	if req.PlanTier != "" {
		tier = models.PlanTier(req.PlanTier)
	}

	store := &models.Store{
		Name:      req.Name,
		Domain:    domain,
		Subdomain: subdomain,
		PlanTier:  tier,
		IsActive:  true,
	}
	s.catalog.Apply(store)

	if err := s.stores.Create(store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	member := &models.StoreMember{
		UserID:  creator.ID,
		StoreID: store.ID,
		Role:    models.StoreRoleOwner,
	}
	if err := s.members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	response := s.toResponse(store)
	return &response, nil
}

// GetByID returns a store by id.
func (s *StoreService) GetByID(ctx context.Context, id uuid.UUID) (*StoreResponse, error) {
	store, err := s.stores.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	response := s.toResponse(store)
	return &response, nil
}

// Current converts an already-resolved store to its API shape.
func (s *StoreService) Current(store *models.Store) StoreResponse {
	return s.toResponse(store)
}

// ListForUser returns the stores the user is a member of.
func (s *StoreService) ListForUser(ctx context.Context, userID uuid.UUID) ([]StoreResponse, error) {
	memberships, err := s.members.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]StoreResponse, 0, len(memberships))
	for _, m := range memberships {
		store, err := s.stores.GetByID(m.StoreID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get store: %w", err)
		}
		responses = append(responses, s.toResponse(store))
	}
	return responses, nil
}

// toResponse converts a Store model to API response
func (s *StoreService) toResponse(store *models.Store) StoreResponse {
	return StoreResponse{
		ID:                 store.ID,
		Name:               store.Name,
		Domain:             store.Domain,
		Subdomain:          store.Subdomain,
		LogoURL:            store.LogoURL,
		PlanTier:           store.PlanTier,
		MaxProducts:        store.MaxProducts,
		MaxOrdersPerMonth:  store.MaxOrdersPerMonth,
		IsActive:           store.IsActive,
		IsSuspended:        store.IsSuspended,
		SubscriptionEndsAt: store.SubscriptionEndsAt,
		Settings:           store.Settings,
		Theme:              store.Theme,
		CreatedAt:          store.CreatedAt,
	}
}
