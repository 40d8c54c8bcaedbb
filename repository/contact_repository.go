package repository

import (
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

type ContactRepository struct{ DB *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{DB: db} }

func (r *ContactRepository) Create(sub *entity.ContactSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *ContactRepository) List() ([]entity.ContactSubmission, error) {
	var subs []entity.ContactSubmission
	if err := r.DB.Order("created_at DESC, id DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
