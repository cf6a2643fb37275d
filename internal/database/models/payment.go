package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PaymentStatus tracks a payment attempt against an external provider
type PaymentStatus string

const (
	PaymentStatusInitialized PaymentStatus = "initialized"
	PaymentStatusSuccess     PaymentStatus = "success"
	PaymentStatusFailed      PaymentStatus = "failed"
)

// Payment records one transaction attempt with an external gateway.
// The provider reference is globally unique; the raw provider response is
// kept for reconciliation.
type Payment struct {
	BaseModel
	StoreID     uuid.UUID       `json:"store_id" gorm:"type:uuid;not null;index"`
	OrderID     uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	Provider    string          `json:"provider" gorm:"size:50;not null;default:'paystack'"`
	Reference   string          `json:"reference" gorm:"uniqueIndex;not null;size:100"`
	Amount      float64         `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency    string          `json:"currency" gorm:"size:3;not null;default:'NGN'"`
	Status      PaymentStatus   `json:"status" gorm:"type:varchar(30);not null;default:'initialized'"`
	RawResponse json.RawMessage `json:"raw_response,omitempty" gorm:"type:jsonb"`

	Order *Order `json:"order,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
