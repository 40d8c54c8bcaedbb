package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"column:image_url;not null" json:"imageUrl"`
	ServingSize string          `gorm:"not null" json:"servingSize"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"` // preload only when needed

	OrderItems []OrderItem `json:"-"`
}
