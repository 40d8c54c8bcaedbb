package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Testimonial struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	AvatarURL string          `gorm:"column:avatar_url;not null" json:"avatarUrl"`
	Rating    decimal.Decimal `gorm:"type:decimal(3,1);not null" json:"rating"`
	Comment   string          `gorm:"not null" json:"comment"`
	EventType string          `gorm:"not null" json:"eventType"`
	// no default tag: gorm skips zero-value fields that carry one, so a
	// false insert would come back true
	IsVisible bool            `gorm:"not null" json:"isVisible"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}
