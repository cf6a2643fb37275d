package models

import "github.com/google/uuid"

// OrderItem is a line item in an order. Unit price is captured at order
// time so later product edits do not rewrite history; products referenced
// by items are protected from deletion.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1" validate:"gt=0"`
	UnitPrice float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Total     float64   `json:"total" gorm:"type:numeric(12,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}
