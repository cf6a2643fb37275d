package models

import "github.com/google/uuid"

// Product is a store-scoped catalog entry. Slugs are unique within a store.
type Product struct {
	BaseModel
	StoreID     uuid.UUID  `json:"store_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_products_store_slug"`
	BrandID     *uuid.UUID `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Slug        string     `json:"slug" gorm:"not null;size:220;uniqueIndex:idx_products_store_slug" validate:"required,max=220"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Price       float64    `json:"price" gorm:"type:numeric(12,2);not null" validate:"gte=0"`
	Currency    string     `json:"currency" gorm:"size:3;not null;default:'NGN'" validate:"required,len=3"`
	Stock       int        `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`

	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
