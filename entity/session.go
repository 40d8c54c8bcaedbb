package entity

import "time"

// Session is a server-side login session keyed by the opaque token carried
// in the session cookie.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
