package models

import (
	"encoding/json"
	"time"
)

// PlanTier identifies a store's subscription plan
type PlanTier string

const (
	PlanTierFree  PlanTier = "free"
	PlanTierBasic PlanTier = "basic"
	PlanTierPro   PlanTier = "pro"
)

// Store represents an isolated business account. Every piece of commerce
// data (products, brands, orders, payments) is scoped to exactly one store.
// Stores are never hard-deleted; lifecycle is expressed via the is_active
// and is_suspended flags.
type Store struct {
	BaseModel
	Name      string  `json:"name" gorm:"not null;size:150;index" validate:"required,max=150"`
	Domain    string  `json:"domain" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Subdomain *string `json:"subdomain,omitempty" gorm:"uniqueIndex;size:100" validate:"omitempty,max=100"`
	LogoURL   *string `json:"logo_url,omitempty" gorm:"size:500"`

	PlanTier          PlanTier `json:"plan_tier" gorm:"type:varchar(20);not null;default:'free'"`
	MaxProducts       *int     `json:"max_products,omitempty"`
	MaxOrdersPerMonth *int     `json:"max_orders_per_month,omitempty"`
	MaxStorageMB      *int     `json:"max_storage_mb,omitempty"`

	IsActive         bool       `json:"is_active" gorm:"not null;default:true"`
	IsSuspended      bool       `json:"is_suspended" gorm:"not null;default:false"`
	SuspensionReason string     `json:"suspension_reason,omitempty" gorm:"size:255"`
	TrialEndsAt      *time.Time `json:"trial_ends_at,omitempty"`
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at,omitempty"`

	Settings json.RawMessage `json:"settings,omitempty" gorm:"type:jsonb"`
	Theme    json.RawMessage `json:"theme,omitempty" gorm:"type:jsonb"`

	// Relationships
	Members  []StoreMember `json:"members,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Products []Product     `json:"products,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Brands   []Brand       `json:"brands,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Orders   []Order       `json:"orders,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Store
func (Store) TableName() string {
	return "stores"
}

// SubscriptionExpired reports whether the store's paid subscription window,
// if one was ever set, has lapsed.
func (s *Store) SubscriptionExpired(now time.Time) bool {
	return s.SubscriptionEndsAt != nil && s.SubscriptionEndsAt.Before(now)
}
