package models

import "github.com/google/uuid"

// Brand is a store-scoped product grouping.
type Brand struct {
	BaseModel
	StoreID uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"not null;size:150;index" validate:"required,max=150"`
}

// TableName returns the table name for Brand
func (Brand) TableName() string {
	return "brands"
}
