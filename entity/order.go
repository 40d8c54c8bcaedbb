package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerName  string          `gorm:"not null" json:"customerName" validate:"required"`
	CustomerEmail string          `gorm:"not null" json:"customerEmail" validate:"required"`
	CustomerPhone string          `gorm:"not null" json:"customerPhone" validate:"required"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount" validate:"required"`
	Status        string          `gorm:"not null;default:pending" json:"status" validate:"required"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`

	OrderItems []OrderItem `json:"-"` // loaded separately on the detail endpoint
}
