package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber   string    `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SubtotalCents int64     `gorm:"not null" json:"subtotal_cents"`
	ShippingCents int64     `gorm:"not null" json:"shipping_cents"`
	TotalCents    int64     `gorm:"not null" json:"total_cents"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	OrderItems    []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID  string    `gorm:"not null" json:"product_id"`
	Name       string    `gorm:"not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	PriceCents int64     `gorm:"not null" json:"price_cents"`
}

// CheckoutEvent is published to Kafka when a checkout is requested.
type CheckoutEvent struct {
	OrderID     string     `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	UserID      string     `json:"user_id"`
	TotalCents  int64      `json:"total_cents"`
	Items       []CartItem `json:"items"`
	RequestedAt time.Time  `json:"requested_at"`
}
