package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

func (r *SessionRepository) Create(s *entity.Session) error {
	return r.DB.Create(s).Error
}

// FindValid resolves a token to an unexpired session with its user loaded.
func (r *SessionRepository) FindValid(token string) (*entity.Session, error) {
	var s entity.Session
	err := r.DB.Preload("User").
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByToken(token string) error {
	return r.DB.Where("token = ?", token).Delete(&entity.Session{}).Error
}

// DeleteExpired clears stale rows. There is no background sweeper; this is
// called opportunistically on login.
func (r *SessionRepository) DeleteExpired() error {
	return r.DB.Where("expires_at <= ?", time.Now()).Delete(&entity.Session{}).Error
}
