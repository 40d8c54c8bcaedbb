package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	Quantity int  `gorm:"not null" json:"quantity"`
	// Price is a snapshot of the product price at order time, not a live
	// reference to Product.Price.
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`

	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`
}
