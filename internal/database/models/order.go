package models

import "github.com/google/uuid"

// OrderStatus tracks an order through its payment lifecycle
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a store-scoped purchase. Guest checkout is allowed, so UserID
// is optional; the buyer email is always recorded.
type Order struct {
	BaseModel
	StoreID  uuid.UUID   `json:"store_id" gorm:"type:uuid;not null;index"`
	UserID   *uuid.UUID  `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Email    string      `json:"email" gorm:"not null;size:255" validate:"required,email"`
	Currency string      `json:"currency" gorm:"size:3;not null;default:'NGN'"`
	Status   OrderStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending'"`
	Subtotal float64     `json:"subtotal" gorm:"type:numeric(12,2);not null;default:0"`
	Total    float64     `json:"total" gorm:"type:numeric(12,2);not null;default:0"`

	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Order
func (Order) TableName() string {
	return "orders"
}
